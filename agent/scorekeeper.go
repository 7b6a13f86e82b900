package agent

import (
	"context"
	"fmt"

	"github.com/civtrack/goldwatch"
	"github.com/civtrack/goldwatch/renderer"
	"github.com/civtrack/goldwatch/turns"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user is watching a running strategy game and wants to know who
			owes whom: who has been generous with gold and luxuries, who has
			been freeloading, and how that changed over the turns.

			Learn about the experts' skills from the Tools and ask them
			questions; they are at your service and keep context across your
			questions. Devise a plan of questions and come up with the best
			response to the user's request.

			Players are named like "[3] ROME": the number is their slot in the
			game, the rest the civilization they play.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewScorekeeper creates the expert wired to the live ledger.
func NewScorekeeper(ledger *goldwatch.Ledger) *Expert {
	lib := []Function{standingsFunc(ledger), netHistoryFunc(ledger)}

	return &Expert{
		Name: "Scorekeeper",
		Description: `This is the Scorekeeper. It reads the trade ledger of the
		running game: every gold and luxury deal, per-player totals with
		compounding interest, and per-turn history. Ask it for standings at
		any turn or for how a player's net balance evolved.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the scorekeeper of a strategy game's trade ledger.
				Use the available tools to answer questions about who sent and
				received gold and luxuries, at which turn, and what those flows
				are worth with 3.6% per-turn compound interest. The "Adj."
				figures are the interest-adjusted ones. Positive net means the
				player gave more than it got.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a Function from a declaration and a closure.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

var turnParam = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"turn": {
			Type:        genai.TypeInteger,
			Description: "The turn to report on. The latest closed turn is the default.",
		},
	},
}

// parseTurn extracts the optional turn argument, falling back to fallback.
func parseTurn(args map[string]any, fallback turns.Turn) (turns.Turn, error) {
	iturn, ok := args["turn"]
	if !ok {
		return fallback, nil
	}
	// genai delivers JSON numbers as float64
	fturn, ok := iturn.(float64)
	if !ok {
		return fallback, fmt.Errorf("argument 'turn' is not a number as expected but %T", iturn)
	}
	return turns.Turn(fturn), nil
}

func standingsFunc(ledger *goldwatch.Ledger) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Standings",
			Description: `Standings returns the trade table as of a turn: per
			player, luxuries and gold sent and received, raw and with
			interest, gold-per-turn income, and net balances.`,
			Parameters: turnParam,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table, one row per player.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			turn, err := parseTurn(args, ledger.CurrentTurn()-1)
			if err != nil {
				return errorResponse(id, "Standings", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Standings",
				Response: map[string]any{
					"output": renderer.Table(ledger.TableReport(turn)),
				},
			}
		},
	}
}

func netHistoryFunc(ledger *goldwatch.Ledger) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "NetHistory",
			Description: `NetHistory charts every player's net trade balance
			over the closed turns up to the given turn.`,
			Parameters: turnParam,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "One ascii line chart per player.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			turn, err := parseTurn(args, ledger.CurrentTurn())
			if err != nil {
				return errorResponse(id, "NetHistory", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "NetHistory",
				Response: map[string]any{
					"output": renderer.Chart(ledger.NetSeriesReport(turn)),
				},
			}
		},
	}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}
