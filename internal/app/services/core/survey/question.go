package survey

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"intake-service/internal/app/models"
)

type Kind string

const (
	KindIntro                Kind = "intro"
	KindFreeText             Kind = "free-text"
	KindNumericText          Kind = "numeric-text"
	KindMultiChoice          Kind = "multi-choice"
	KindMultiChoiceWithOther Kind = "multi-choice-with-other"
	KindFreeTextList         Kind = "free-text-list"
)

// IsText reports whether answers of this kind are typed text.
func (k Kind) IsText() bool {
	return k == KindFreeText || k == KindNumericText || k == KindFreeTextList
}

// IsChoice reports whether answers of this kind are a selection of options.
func (k Kind) IsChoice() bool {
	return k == KindMultiChoice || k == KindMultiChoiceWithOther
}

// AcceptsCompletionCommand reports whether typing "done", "finish" or "stop"
// into a question of this kind ends the survey.
func (k Kind) AcceptsCompletionCommand() bool {
	return k == KindFreeText || k == KindFreeTextList
}

type Option struct {
	Label string
	Value string
}

// RawAnswer is an answer as the presentation layer collected it: typed text
// for text questions, selected option labels for choice questions.
type RawAnswer struct {
	Text     *string  `json:"text,omitempty"`
	Selected []string `json:"selected,omitempty"`
}

func TextAnswer(text string) RawAnswer {
	return RawAnswer{Text: &text}
}

func SelectionAnswer(labels ...string) RawAnswer {
	return RawAnswer{Selected: append([]string{}, labels...)}
}

type Question struct {
	ID          int
	Step        string
	Title       string
	Description string
	Kind        Kind
	Path        string
	Options     []Option
	OtherLabel  string

	handler answerHandler
}

// Apply normalizes raw for this question and returns a copy of record with
// the question's field replaced. record itself is never modified; on error
// it is returned unchanged.
func (q Question) Apply(record models.SurveyData, raw RawAnswer, notes map[string]string) (models.SurveyData, error) {
	next := record.Clone()
	if err := q.handler.apply(&next, raw, notes); err != nil {
		return record, fmt.Errorf("question %d: %w", q.ID, err)
	}
	return next, nil
}

// ApplyOtherNote rewrites the other_note of the "other" entry already stored
// for this question, leaving every other entry untouched. An empty note
// clears it.
func (q Question) ApplyOtherNote(record models.SurveyData, note string) (models.SurveyData, error) {
	handler, ok := q.handler.(otherNoteHandler)
	if !ok {
		return record, fmt.Errorf("question %d: %w", q.ID, ErrNoOtherOption)
	}
	next := record.Clone()
	handler.applyOtherNote(&next, noteOrNil(note))
	return next, nil
}

// Selection returns the labels currently stored for a choice question.
func (q Question) Selection(record models.SurveyData) []string {
	return q.handler.selection(&record)
}

func (q Question) HasOption(label string) bool {
	return slices.ContainsFunc(q.Options, func(o Option) bool { return o.Label == label })
}

type answerHandler interface {
	kind() Kind
	path() string
	optionLabels() []string
	apply(record *models.SurveyData, raw RawAnswer, notes map[string]string) error
	selection(record *models.SurveyData) []string
}

type otherNoteHandler interface {
	otherLabel() string
	applyOtherNote(record *models.SurveyData, note *string)
}

func requireText(raw RawAnswer) (string, error) {
	if raw.Text == nil || raw.Selected != nil {
		return "", fmt.Errorf("%w: expected text", ErrAnswerShape)
	}
	return *raw.Text, nil
}

func requireSelection(raw RawAnswer) ([]string, error) {
	if raw.Text != nil {
		return nil, fmt.Errorf("%w: expected a selection", ErrAnswerShape)
	}
	return raw.Selected, nil
}

func noteOrNil(note string) *string {
	if strings.TrimSpace(note) == "" {
		return nil
	}
	return &note
}

type introHandler struct{}

func (introHandler) kind() Kind             { return KindIntro }
func (introHandler) path() string           { return "" }
func (introHandler) optionLabels() []string { return nil }

func (introHandler) apply(*models.SurveyData, RawAnswer, map[string]string) error {
	return ErrNotAnswerable
}

func (introHandler) selection(*models.SurveyData) []string { return nil }

type numericTextHandler struct {
	field Field[*float64]
}

func (h numericTextHandler) kind() Kind             { return KindNumericText }
func (h numericTextHandler) path() string           { return h.field.Path() }
func (h numericTextHandler) optionLabels() []string { return nil }

func (h numericTextHandler) apply(record *models.SurveyData, raw RawAnswer, _ map[string]string) error {
	text, err := requireText(raw)
	if err != nil {
		return err
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		h.field.Set(record, nil)
		return nil
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %q", ErrNotANumber, text)
	}
	h.field.Set(record, &value)
	return nil
}

func (h numericTextHandler) selection(*models.SurveyData) []string { return nil }

// freeTextHandler stores text verbatim; skip tokens store null. wrap turns
// the optional text into the field's type.
type freeTextHandler[T any] struct {
	field Field[T]
	wrap  func(text *string) T
}

func (h freeTextHandler[T]) kind() Kind             { return KindFreeText }
func (h freeTextHandler[T]) path() string           { return h.field.Path() }
func (h freeTextHandler[T]) optionLabels() []string { return nil }

func (h freeTextHandler[T]) apply(record *models.SurveyData, raw RawAnswer, _ map[string]string) error {
	text, err := requireText(raw)
	if err != nil {
		return err
	}
	if isSkipAnswer(text) {
		h.field.Set(record, h.wrap(nil))
		return nil
	}
	h.field.Set(record, h.wrap(&text))
	return nil
}

func (h freeTextHandler[T]) selection(*models.SurveyData) []string { return nil }

type freeTextListHandler[T any] struct {
	field Field[[]T]
	item  func(fragment string) T
}

func (h freeTextListHandler[T]) kind() Kind             { return KindFreeTextList }
func (h freeTextListHandler[T]) path() string           { return h.field.Path() }
func (h freeTextListHandler[T]) optionLabels() []string { return nil }

func (h freeTextListHandler[T]) apply(record *models.SurveyData, raw RawAnswer, _ map[string]string) error {
	text, err := requireText(raw)
	if err != nil {
		return err
	}
	fragments := SplitFreeTextList(text)
	items := make([]T, len(fragments))
	for i, fragment := range fragments {
		items[i] = h.item(fragment)
	}
	h.field.Set(record, items)
	return nil
}

func (h freeTextListHandler[T]) selection(*models.SurveyData) []string { return nil }

// multiChoiceHandler stores the selected labels. synonyms are rewritten
// before validation; selecting expandAll stores every other option and
// selecting exclusive stores only exclusive.
type multiChoiceHandler struct {
	field     Field[[]string]
	options   []string
	synonyms  map[string]string
	expandAll string
	exclusive string
}

func (h multiChoiceHandler) kind() Kind             { return KindMultiChoice }
func (h multiChoiceHandler) path() string           { return h.field.Path() }
func (h multiChoiceHandler) optionLabels() []string { return h.options }

func (h multiChoiceHandler) apply(record *models.SurveyData, raw RawAnswer, _ map[string]string) error {
	selected, err := requireSelection(raw)
	if err != nil {
		return err
	}
	labels, err := canonicalSelection(selected, h.options, h.synonyms)
	if err != nil {
		return err
	}

	switch {
	case h.exclusive != "" && slices.Contains(labels, h.exclusive):
		labels = []string{h.exclusive}
	case h.expandAll != "" && slices.Contains(labels, h.expandAll):
		labels = make([]string, 0, len(h.options)-1)
		for _, option := range h.options {
			if option != h.expandAll {
				labels = append(labels, option)
			}
		}
	}

	h.field.Set(record, labels)
	return nil
}

func (h multiChoiceHandler) selection(record *models.SurveyData) []string {
	return slices.Clone(h.field.Get(record))
}

// multiChoiceWithOtherHandler stores each selected label as a structured
// entry. The entry for other picks up the note typed for the question's
// path; selecting none stores a single none entry.
type multiChoiceWithOtherHandler[T any] struct {
	field    Field[[]T]
	options  []string
	other    string
	none     string
	newEntry func(label string, otherNote *string) T
	labelOf  func(entry T) string
	withNote func(entry T, otherNote *string) T
}

func (h multiChoiceWithOtherHandler[T]) kind() Kind         { return KindMultiChoiceWithOther }
func (h multiChoiceWithOtherHandler[T]) path() string       { return h.field.Path() }
func (h multiChoiceWithOtherHandler[T]) otherLabel() string { return h.other }

// optionLabels lists the declared options, followed by the none sentinel
// when the declared list leaves it out.
func (h multiChoiceWithOtherHandler[T]) optionLabels() []string {
	if h.none == "" || slices.Contains(h.options, h.none) {
		return h.options
	}
	return append(slices.Clip(h.options), h.none)
}

func (h multiChoiceWithOtherHandler[T]) apply(record *models.SurveyData, raw RawAnswer, notes map[string]string) error {
	selected, err := requireSelection(raw)
	if err != nil {
		return err
	}
	labels, err := canonicalSelection(selected, h.optionLabels(), nil)
	if err != nil {
		return err
	}

	if h.none != "" && slices.Contains(labels, h.none) {
		h.field.Set(record, []T{h.newEntry(h.none, nil)})
		return nil
	}

	entries := make([]T, len(labels))
	for i, label := range labels {
		var note *string
		if label == h.other {
			note = noteOrNil(notes[h.field.Path()])
		}
		entries[i] = h.newEntry(label, note)
	}
	h.field.Set(record, entries)
	return nil
}

func (h multiChoiceWithOtherHandler[T]) applyOtherNote(record *models.SurveyData, note *string) {
	entries := slices.Clone(h.field.Get(record))
	for i, entry := range entries {
		if h.labelOf(entry) == h.other {
			entries[i] = h.withNote(entry, note)
		}
	}
	h.field.Set(record, entries)
}

func (h multiChoiceWithOtherHandler[T]) selection(record *models.SurveyData) []string {
	entries := h.field.Get(record)
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = h.labelOf(entry)
	}
	return labels
}

// canonicalSelection rewrites synonyms, rejects labels that are not options
// and drops repeats, keeping the order of first appearance.
func canonicalSelection(selected, options []string, synonyms map[string]string) ([]string, error) {
	labels := make([]string, 0, len(selected))
	for _, label := range selected {
		if canonical, ok := synonyms[label]; ok {
			label = canonical
		}
		if !slices.Contains(options, label) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOption, label)
		}
		if !slices.Contains(labels, label) {
			labels = append(labels, label)
		}
	}
	return labels, nil
}
