package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/arcframework/arc/internal/plugin/model"
	"github.com/arcframework/arc/internal/plugin/naming"
)

// Question is a single free-text prompt.
type Question struct {
	Message  string
	Default  string
	Required bool
}

// Prompter asks the user a question and returns the answer.
type Prompter interface {
	Ask(q Question) (string, error)
}

// surveyPrompter asks questions on the terminal. A non-empty default is
// offered as the only autocomplete suggestion.
type surveyPrompter struct{}

func (surveyPrompter) Ask(q Question) (string, error) {
	prompt := &survey.Input{
		Message: q.Message,
		Default: q.Default,
	}
	if q.Default != "" {
		def := q.Default
		prompt.Suggest = func(string) []string { return []string{def} }
	}

	var opts []survey.AskOpt
	if q.Required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}

	var answer string
	if err := survey.AskOne(prompt, &answer, opts...); err != nil {
		return "", err
	}
	return answer, nil
}

// CollectRequest builds the plugin request, asking only for answers missing
// from preset. verify runs as soon as the slug is known so that a taken
// target aborts before the remaining questions.
func CollectRequest(p Prompter, preset model.Request, verify func(slug string) error) (model.Request, error) {
	req := preset
	req.Name = strings.TrimSpace(req.Name)

	for req.Name == "" {
		name, err := p.Ask(Question{
			Message:  fmt.Sprintf("Enter plugin name (e.g. %s):", comment("Moblish Thundankle Perfurbulator")),
			Required: true,
		})
		if err != nil {
			return model.Request{}, fmt.Errorf("failed to prompt for plugin name: %w", err)
		}
		req.Name = strings.TrimSpace(name)
	}

	var err error
	if req.Slug == "" {
		if req.Slug, err = askWithDefault(p, "slug", naming.Slugify(req.Name)); err != nil {
			return model.Request{}, err
		}
	}
	if verify != nil {
		if err := verify(req.Slug); err != nil {
			return model.Request{}, err
		}
	}

	if req.Namespace == "" {
		if req.Namespace, err = askWithDefault(p, "namespace", naming.Namespace(req.Name)); err != nil {
			return model.Request{}, err
		}
	}

	optional := []struct {
		label string
		dst   *string
	}{
		{"URI", &req.URI},
		{"description", &req.Description},
		{"author", &req.Author},
		{"author URI", &req.AuthorURI},
	}
	for _, o := range optional {
		if *o.dst != "" {
			continue
		}
		if *o.dst, err = askWithDefault(p, o.label, ""); err != nil {
			return model.Request{}, err
		}
	}

	return req, nil
}

// askWithDefault asks for an optional answer; an empty reply selects def.
func askWithDefault(p Prompter, label, def string) (string, error) {
	answer, err := p.Ask(Question{
		Message: fmt.Sprintf("Enter plugin %s (default %s):", label, comment(fmt.Sprintf("%q", def))),
		Default: def,
	})
	if err != nil {
		return "", fmt.Errorf("failed to prompt for plugin %s: %w", label, err)
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}
