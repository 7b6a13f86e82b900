package agent

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// Function is anything a model can call: another expert, or a tool over the
// ledger.
type Function interface {
	// Declare this function
	Declaration() *genai.FunctionDeclaration
	// Call this function
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// Library resolves a model's function call against a set of Functions.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// NewLibrary builds a Library dispatching by declared name.
func NewLibrary[T Function](functions []T) Library {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		for _, f := range functions {
			if f.Declaration().Name == call.Name {
				return f.Call(ctx, call.ID, call.Args)
			}
		}
		return &genai.FunctionResponse{
			ID:   call.ID,
			Name: call.Name,
			Response: map[string]any{
				"error": fmt.Errorf("unknown function %s", call.Name),
			},
		}
	}
}

// NewDeclaration collects the declarations of a set of Functions.
func NewDeclaration[T Function](functions []T) []*genai.FunctionDeclaration {
	result := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, f := range functions {
		result = append(result, f.Declaration())
	}
	return result
}

// Expert represents a chat with one specialized model.
type Expert struct {
	Name        string
	Description string
	ModelName   string
	Config      *genai.GenerateContentConfig
	Library     Library
	chat        *genai.Chat
}

// Start opens the expert's chat.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask sends parts to the expert, resolving its function calls through the
// library until a real response comes back.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}
		fresp := e.Library(ctx, part0.FunctionCall)
		return e.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}

// Declaration makes the expert itself callable, so the facilitator can ask
// it questions.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "The question to ask the expert.",
				},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Expert's response.",
		},
	}
}

// Call performs the call of asking this expert.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{
		ID:   id,
		Name: e.Name,
	}

	question, ok := args["question"].(string)
	if !ok {
		fresp.Response = map[string]any{
			"error": fmt.Sprintf("invalid type got %T, expected string", args["question"]),
		}
		return fresp
	}

	response, err := e.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		fresp.Response = map[string]any{
			"error": fmt.Sprintf("something went wrong while calling the expert: %v", err),
		}
		return fresp
	}

	r := response.Parts[0].Text
	log.Printf("Expert %q: \n        %q\n        %q", e.Name, question, r)
	fresp.Response = map[string]any{
		"output": r,
	}
	return fresp
}
