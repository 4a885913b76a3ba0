package builtin

import (
	"context"
	"strings"

	"github.com/lmeynard/skillkit/skills"
)

// TextProcessor applies simple string transformations.
type TextProcessor struct {
	skills.Base
}

// NewTextProcessor creates the text processing skill.
func NewTextProcessor() *TextProcessor {
	return &TextProcessor{}
}

func (t *TextProcessor) Name() string { return "text_processor" }

func (t *TextProcessor) Description() string {
	return "Processes text with operations like uppercase, lowercase, reverse, count words"
}

func (t *TextProcessor) Category() string { return "text" }

func (t *TextProcessor) Tags() []string { return []string{"text", "string", "processing"} }

func (t *TextProcessor) Parameters() []skills.Parameter {
	return []skills.Parameter{
		{
			Name:        "text",
			Type:        skills.ParamString,
			Description: "The text to process",
			Required:    true,
		},
		{
			Name:        "operation",
			Type:        skills.ParamString,
			Description: "Operation: uppercase, lowercase, reverse, count_words, count_chars",
			Required:    true,
		},
	}
}

func (t *TextProcessor) Execute(_ context.Context, args map[string]any) skills.Result {
	text, _ := args["text"].(string)
	operation, _ := args["operation"].(string)

	var data any
	switch operation {
	case "uppercase":
		data = strings.ToUpper(text)
	case "lowercase":
		data = strings.ToLower(text)
	case "reverse":
		data = reverse(text)
	case "count_words":
		data = len(strings.Fields(text))
	case "count_chars":
		data = len([]rune(text))
	default:
		return skills.Failf("unknown operation: %q", operation)
	}

	return skills.Result{
		Success:  true,
		Data:     data,
		Metadata: map[string]any{"operation": operation, "original_length": len([]rune(text))},
	}
}

// reverse flips a string rune-wise, so multi-byte characters survive.
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
