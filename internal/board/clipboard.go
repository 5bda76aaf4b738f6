package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	clipboardKind    = "cardboard/clipboard"
	clipboardVersion = 1
)

var (
	ErrEmptyClipboard   = errors.New("clipboard is empty")
	ErrInvalidClipboard = errors.New("invalid clipboard document")
)

var validate = validator.New()

// Link is a connector endpoint pair captured at copy time.
type Link struct {
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to" validate:"required,nefield=From"`
}

// ClipboardEntry is a value snapshot of one copied card. It never refers to
// a live Card.
type ClipboardEntry struct {
	SourceID string  `yaml:"id" validate:"required"`
	Title    string  `yaml:"title"`
	Text     string  `yaml:"text"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width" validate:"gte=100"`
	Height   float64 `yaml:"height" validate:"gte=50"`
	Links    []Link  `yaml:"links,omitempty" validate:"dive"`
}

type clipboardDocument struct {
	Kind    string           `yaml:"kind" validate:"eq=cardboard/clipboard"`
	Version int              `yaml:"version" validate:"eq=1"`
	Cards   []ClipboardEntry `yaml:"cards" validate:"required,min=1,dive"`
}

// Snapshot captures cards plus every connector touching them.
func Snapshot(cards []*Card, connectors *ConnectorStore) []ClipboardEntry {
	entries := make([]ClipboardEntry, 0, len(cards))
	for _, card := range cards {
		entry := ClipboardEntry{
			SourceID: card.ID,
			Title:    card.Title,
			Text:     card.Text,
			X:        card.X,
			Y:        card.Y,
			Width:    card.Width,
			Height:   card.Height,
		}
		for _, c := range connectors.Touching(card.ID) {
			entry.Links = append(entry.Links, Link{From: c.From, To: c.To})
		}
		entries = append(entries, entry)
	}
	return entries
}

// Reconstruct creates a new card for every entry and rewires the connectors
// whose endpoints were both copied. Endpoints are remapped through the
// source ids captured at copy time, so equal titles cannot collide.
func Reconstruct(entries []ClipboardEntry, cards *CardStore, connectors *ConnectorStore) []*Card {
	remap := make(map[string]*Card, len(entries))
	created := make([]*Card, 0, len(entries))
	for _, e := range entries {
		card := cards.Restore(e.Title, e.Text, Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height})
		remap[e.SourceID] = card
		created = append(created, card)
	}
	for _, e := range entries {
		for _, link := range e.Links {
			from, okFrom := remap[link.From]
			to, okTo := remap[link.To]
			if !okFrom || !okTo {
				continue
			}
			connectors.Add(from.ID, to.ID)
		}
	}
	return created
}

// EncodeClipboard renders entries as a portable YAML document.
func EncodeClipboard(entries []ClipboardEntry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyClipboard
	}
	doc := clipboardDocument{Kind: clipboardKind, Version: clipboardVersion, Cards: entries}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode clipboard: %w", err)
	}
	return out, nil
}

// DecodeClipboard parses and validates a document produced by EncodeClipboard.
func DecodeClipboard(data []byte) ([]ClipboardEntry, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, ErrEmptyClipboard
	}
	var doc clipboardDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidClipboard, err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidClipboard, formatValidationError(err))
	}
	seen := make(map[string]bool, len(doc.Cards))
	for _, e := range doc.Cards {
		if seen[e.SourceID] {
			return nil, fmt.Errorf("%w: duplicate card id %q", ErrInvalidClipboard, e.SourceID)
		}
		seen[e.SourceID] = true
	}
	return doc.Cards, nil
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "gte", "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "eq":
			msgs = append(msgs, fmt.Sprintf("%s must be %s", field, e.Param()))
		case "nefield":
			msgs = append(msgs, fmt.Sprintf("%s must differ from %s", field, strings.ToLower(e.Param())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}
