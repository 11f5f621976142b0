package gemini

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/longkey1/crybaby/internal/crybaby"
	"github.com/longkey1/crybaby/internal/crybaby/persona"
	"go.uber.org/zap"
)

const (
	ProviderName   = "gemini"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.5-flash"

	// maxErrorBody bounds how much of an error response ends up in messages and logs
	maxErrorBody = 512

	// emptyTurnText stands in for a replayed turn that only carried files;
	// the API rejects parts without data
	emptyTurnText = "[attachment]"
)

// ModelInfo represents information about an available model
type ModelInfo struct {
	ID          string // Model identifier (e.g., "gemini-2.5-flash")
	Description string // Human-readable description of the model
	IsDefault   bool   // Whether this is the configured model
}

// Config defines the configuration interface for the Gemini client
type Config interface {
	GetModel() string
	GetBaseURL() (string, error)
	GetToken() (string, error)
}

// Client implements crybaby.Assistant on top of the Gemini REST API
type Client struct {
	model   string
	baseURL string
	token   string
	persona *persona.Persona
	client  *http.Client
	logger  *zap.Logger
}

var _ crybaby.Assistant = (*Client)(nil)

// NewClient creates a Gemini client.
// It refuses to start without a token; there is no fallback credential.
func NewClient(config Config, p *persona.Persona, logger *zap.Logger) (*Client, error) {
	token, err := config.GetToken()
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	provider, model, err := crybaby.ParseModelString(config.GetModel())
	if err != nil {
		return nil, fmt.Errorf("invalid model format: %w", err)
	}
	if provider != ProviderName {
		return nil, fmt.Errorf("unsupported provider: %s (only %s is supported)", provider, ProviderName)
	}

	baseURL, err := config.GetBaseURL()
	if err != nil {
		return nil, fmt.Errorf("failed to get base URL: %w", err)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if p == nil {
		p = persona.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 15 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
	}

	return &Client{
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		persona: p,
		client:  &http.Client{Transport: transport},
		logger:  logger.With(zap.String("provider", ProviderName), zap.String("model", model)),
	}, nil
}

// Model returns the model name without the provider prefix
func (c *Client) Model() string {
	return c.model
}

// Converse sends the persona, the prior history and the current turn, with grounded search enabled
func (c *Client) Converse(ctx context.Context, text string, history []crybaby.HistoryEntry, attachments []crybaby.Attachment) (*crybaby.Reply, error) {
	reqBody := c.buildConverseRequest(text, history, attachments)

	c.logger.Debug("Sending conversation request",
		zap.Int("history", len(history)),
		zap.Int("attachments", len(attachments)))

	result, err := c.generate(ctx, reqBody)
	if err != nil {
		return nil, err
	}

	reply := &crybaby.Reply{
		Text:    responseText(result),
		Sources: c.extractCitations(result),
	}
	if reply.Text == "" {
		c.logger.Debug("Empty response text, using placeholder",
			zap.Int("candidates", len(result.Candidates)))
		reply.Text = c.persona.EmptyReply
	}

	return reply, nil
}

// Transcribe sends a single audio attachment with the transcription instruction.
// Unlike a failed conversation, failures here always reach the caller.
func (c *Client) Transcribe(ctx context.Context, audio crybaby.Attachment) (string, error) {
	reqBody := &Request{
		Contents: []Content{
			{
				Role: "user",
				Parts: []Part{
					inlinePart(audio),
					{Text: c.persona.Transcription},
				},
			},
		},
		SystemInstruction: &SystemInstruction{
			Parts: []Part{{Text: c.persona.System}},
		},
	}

	c.logger.Debug("Sending transcription request",
		zap.String("file", audio.Name),
		zap.String("mime_type", audio.MIMEType))

	result, err := c.generate(ctx, reqBody)
	if err != nil {
		return "", err
	}

	text := responseText(result)
	if text == "" {
		return c.persona.EmptyTranscription, nil
	}
	return text, nil
}

// ListModels returns the models that support generateContent, sorted by ID (descending order)
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("x-goog-api-key", c.token)

	body, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var result ModelsAPIResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &crybaby.RemoteServiceError{Kind: crybaby.RemoteMalformed, Message: "failed to parse models response", Err: err}
	}

	models := make([]ModelInfo, 0, len(result.Models))
	for _, model := range result.Models {
		// Only include models that support generateContent
		if !contains(model.SupportedGenerationMethods, "generateContent") {
			continue
		}

		id := strings.TrimPrefix(model.Name, "models/")
		description := model.Description
		if description == "" {
			description = model.DisplayName
		}

		models = append(models, ModelInfo{
			ID:          id,
			Description: description,
			IsDefault:   id == c.model,
		})
	}

	sort.Slice(models, func(i, j int) bool {
		return models[i].ID > models[j].ID
	})

	return models, nil
}

func (c *Client) buildConverseRequest(text string, history []crybaby.HistoryEntry, attachments []crybaby.Attachment) *Request {
	contents := make([]Content, 0, len(history)+1)
	for _, h := range history {
		text := h.Text
		if strings.TrimSpace(text) == "" {
			text = emptyTurnText
		}
		contents = append(contents, Content{
			Role:  apiRole(h.Role),
			Parts: []Part{{Text: text}},
		})
	}

	// Current turn: text first, then one inline part per attachment
	parts := make([]Part, 0, len(attachments)+1)
	if text != "" {
		parts = append(parts, Part{Text: text})
	}
	for _, att := range attachments {
		parts = append(parts, inlinePart(att))
	}
	contents = append(contents, Content{
		Role:  "user",
		Parts: parts,
	})

	return &Request{
		Contents: contents,
		SystemInstruction: &SystemInstruction{
			Parts: []Part{{Text: c.persona.System}},
		},
		Tools: []Tool{
			{
				GoogleSearch: &GoogleSearch{},
			},
		},
	}
}

// generate posts a generateContent request and decodes the response
func (c *Client) generate(ctx context.Context, reqBody *Request) (*Response, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.token)

	body, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Raw API response", zap.ByteString("body", body))

	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &crybaby.RemoteServiceError{Kind: crybaby.RemoteMalformed, Message: "error parsing response", Err: err}
	}
	return &result, nil
}

// do sends the request and classifies transport and HTTP failures
func (c *Client) do(httpReq *http.Request) ([]byte, error) {
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &crybaby.RemoteServiceError{Kind: crybaby.RemoteNetwork, Message: "error sending request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &crybaby.RemoteServiceError{Kind: crybaby.RemoteNetwork, StatusCode: resp.StatusCode, Message: "error reading response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		rerr := statusError(resp.StatusCode, body)
		c.logger.Warn("API request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("kind", string(rerr.Kind)))
		return nil, rerr
	}

	return body, nil
}

func statusError(statusCode int, body []byte) *crybaby.RemoteServiceError {
	kind := crybaby.RemoteStatus
	message := truncate(strings.TrimSpace(string(body)), maxErrorBody)

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		message = apiErr.Error.Message
		if apiErr.Error.Status == "INVALID_ARGUMENT" && strings.Contains(strings.ToLower(message), "api key") {
			kind = crybaby.RemoteAuth
		}
	}
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		kind = crybaby.RemoteAuth
	}

	return &crybaby.RemoteServiceError{Kind: kind, StatusCode: statusCode, Message: message}
}

// extractCitations maps grounding chunks to citations in encountered order.
// Duplicates are kept as returned by the service.
func (c *Client) extractCitations(result *Response) []crybaby.Citation {
	citations := []crybaby.Citation{}
	if len(result.Candidates) == 0 || result.Candidates[0].GroundingMetadata == nil {
		return citations
	}

	for _, chunk := range result.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = c.persona.UntitledSource
		}
		citations = append(citations, crybaby.Citation{Title: title, URI: chunk.Web.URI})
	}
	return citations
}

// responseText joins the text parts of the first candidate, skipping thoughts
func responseText(result *Response) string {
	if len(result.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

func inlinePart(att crybaby.Attachment) Part {
	return Part{
		InlineData: &InlineData{
			MIMEType: att.MIMEType,
			Data:     att.Payload(),
		},
	}
}

// apiRole maps domain roles to Gemini roles; Gemini uses "model" instead of "assistant"
func apiRole(role crybaby.Role) string {
	if role == crybaby.RoleAssistant {
		return "model"
	}
	return string(role)
}

// contains checks if a string slice contains a specific string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// truncate cuts s to at most n bytes without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
