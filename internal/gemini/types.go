package gemini

// ModelsAPIResponse represents the response from Gemini's models endpoint
type ModelsAPIResponse struct {
	Models []ModelData `json:"models"`
}

// ModelData represents a single model in the API response
type ModelData struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName"`
	Description                string   `json:"description"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

// Request represents the request body for Gemini's generate content API
type Request struct {
	Contents          []Content          `json:"contents"`
	SystemInstruction *SystemInstruction `json:"system_instruction,omitempty"`
	Tools             []Tool             `json:"tools,omitempty"`
}

// SystemInstruction represents system instruction for Gemini
type SystemInstruction struct {
	Parts []Part `json:"parts"`
}

// Content represents a content item in the Gemini request format
type Content struct {
	Role  string `json:"role,omitempty"` // "user" or "model"
	Parts []Part `json:"parts"`
}

// Part represents a part of the content: either text or inline bytes
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

// InlineData carries base64 encoded file bytes
type InlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

// Tool represents a tool configuration for Gemini
type Tool struct {
	GoogleSearch *GoogleSearch `json:"google_search,omitempty"`
}

// GoogleSearch represents Google Search grounding configuration
type GoogleSearch struct {
	// Empty struct as per API specification
}

// Response represents the full response from Gemini API
type Response struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate represents a candidate response
type Candidate struct {
	Content           ResponseContent    `json:"content"`
	FinishReason      string             `json:"finishReason,omitempty"`
	GroundingMetadata *GroundingMetadata `json:"groundingMetadata,omitempty"`
}

// ResponseContent represents the content of a response
type ResponseContent struct {
	Parts []ResponsePart `json:"parts"`
}

// ResponsePart represents a part of the response content
type ResponsePart struct {
	Text    string `json:"text"`
	Thought bool   `json:"thought,omitempty"`
}

// GroundingMetadata contains grounding information
type GroundingMetadata struct {
	WebSearchQueries []string         `json:"webSearchQueries,omitempty"`
	GroundingChunks  []GroundingChunk `json:"groundingChunks,omitempty"`
}

// GroundingChunk represents a grounding source
type GroundingChunk struct {
	Web *WebChunk `json:"web,omitempty"`
}

// WebChunk contains web source information
type WebChunk struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// APIError is the error envelope returned on non-200 responses
type APIError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
