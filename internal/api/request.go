package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"
)

// Request carries the per-call inputs of an operation.
// The bearer token travels here on every call; the client never caches it.
type Request struct {
	Token      string
	PathParams map[string]string
	JSON       any
	Multipart  *Multipart
}

// Multipart is a form body made of text fields and file parts
type Multipart struct {
	Fields []FormField
	Files  []FormFile
}

// FormField is a text part
type FormField struct {
	Name  string
	Value string
}

// FormFile is a binary part
type FormFile struct {
	Field       string
	FileName    string
	ContentType string
	Content     io.Reader
}

// AddField appends a text part
func (m *Multipart) AddField(name, value string) {
	m.Fields = append(m.Fields, FormField{Name: name, Value: value})
}

// AddFile appends a file part
func (m *Multipart) AddFile(field, fileName, contentType string, content io.Reader) {
	m.Files = append(m.Files, FormFile{
		Field:       field,
		FileName:    fileName,
		ContentType: contentType,
		Content:     content,
	})
}

// summary lists part names for logs; file contents are never logged
func (m *Multipart) summary() string {
	parts := make([]string, 0, len(m.Fields)+len(m.Files))
	for _, f := range m.Fields {
		if isSensitive(f.Name) {
			parts = append(parts, f.Name+"="+redacted)
			continue
		}
		parts = append(parts, f.Name+"="+f.Value)
	}
	for _, f := range m.Files {
		parts = append(parts, fmt.Sprintf("%s=@%s", f.Field, f.FileName))
	}
	return "multipart[" + strings.Join(parts, ", ") + "]"
}

// encodedBody is a request body ready to send
type encodedBody struct {
	data        []byte
	contentType string
	logged      string
}

// encodeBody serializes the request according to the endpoint's encoding
func encodeBody(ep Endpoint, req Request) (*encodedBody, error) {
	switch ep.Encoding {
	case EncodingJSON:
		if req.JSON == nil {
			return nil, fmt.Errorf("%s %s requires a JSON body", ep.Method, ep.Path)
		}
		data, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		return &encodedBody{
			data:        data,
			contentType: "application/json; charset=utf-8",
			logged:      redactJSON(data),
		}, nil

	case EncodingMultipart:
		if req.Multipart == nil {
			return nil, fmt.Errorf("%s %s requires a multipart body", ep.Method, ep.Path)
		}
		return encodeMultipart(req.Multipart)

	default:
		return &encodedBody{}, nil
	}
}

func encodeMultipart(m *Multipart) (*encodedBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range m.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, fmt.Errorf("failed to write form field %q: %w", f.Name, err)
		}
	}

	for _, f := range m.Files {
		contentType := f.ContentType
		if contentType == "" {
			contentType = mime.TypeByExtension(filepath.Ext(f.FileName))
		}
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, filepath.Base(f.FileName)))
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("failed to create file part %q: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, fmt.Errorf("failed to read file %q: %w", f.FileName, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	return &encodedBody{
		data:        buf.Bytes(),
		contentType: w.FormDataContentType(),
		logged:      m.summary(),
	}, nil
}
