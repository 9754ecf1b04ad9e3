package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"intake-service/internal/app/models"
	"intake-service/internal/app/services/core/survey"
	"intake-service/internal/pkg/utils"

	"github.com/sirupsen/logrus"
)

const backCommand = "back"

// Runner walks one respondent through the questionnaire on a terminal.
type Runner struct {
	in  *bufio.Reader
	out io.Writer
	Log *logrus.Logger
	Now func() time.Time
}

func NewRunner(in io.Reader, out io.Writer, log *logrus.Logger) *Runner {
	return &Runner{
		in:  bufio.NewReader(in),
		out: out,
		Log: log,
		Now: time.Now,
	}
}

// Run asks every question in order and returns the finalized document. End of
// input finalizes whatever has been answered so far.
func (r *Runner) Run(ctx context.Context) (models.SurveyData, error) {
	session := survey.NewSession(utils.GenerateSessionID(), r.Now())
	r.Log.WithField("session_id", session.ID).Debug("intake session started")

	intro := session.Current()
	fmt.Fprintf(r.out, "%s\n%s\n\nPress Enter to begin.\n", intro.Title, intro.Description)
	if _, err := r.readLine(); err != nil {
		return r.finish(session, err)
	}
	if _, err := session.Next(r.Now()); err != nil {
		return models.SurveyData{}, err
	}

	for !session.Completed {
		if err := ctx.Err(); err != nil {
			return models.SurveyData{}, err
		}

		q := session.Current()
		r.prompt(q)

		line, err := r.readLine()
		if err != nil {
			return r.finish(session, err)
		}

		if strings.EqualFold(line, backCommand) {
			if err := session.Previous(r.Now()); err != nil {
				return models.SurveyData{}, err
			}
			continue
		}

		finished, err := r.answer(session, q, line)
		if err != nil {
			r.Log.WithError(err).WithField("question_id", q.ID).Debug("answer rejected")
			fmt.Fprintf(r.out, "%s\n\n", rejectionMessage(err))
			continue
		}
		if finished {
			break
		}

		if _, err := session.Next(r.Now()); err != nil {
			return models.SurveyData{}, err
		}
	}

	r.Log.WithField("answered", session.Record.Meta.Progress.Answered).Info("intake session finished")
	return session.Document()
}

func (r *Runner) answer(session *survey.Session, q survey.Question, line string) (bool, error) {
	if !q.Kind.IsChoice() {
		return session.Answer(q.ID, survey.TextAnswer(line), r.Now())
	}

	finished, err := session.Answer(q.ID, survey.SelectionAnswer(parseSelection(q, line)...), r.Now())
	if err != nil || q.OtherLabel == "" {
		return finished, err
	}

	for _, label := range q.Selection(session.Record) {
		if label != q.OtherLabel {
			continue
		}
		fmt.Fprintf(r.out, "Please describe %q:\n> ", q.OtherLabel)
		note, readErr := r.readLine()
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return false, readErr
		}
		if err := session.SetOtherNote(q.ID, note, r.Now()); err != nil {
			return false, err
		}
		break
	}
	return false, nil
}

func (r *Runner) prompt(q survey.Question) {
	fmt.Fprintf(r.out, "[%s] %d/%d %s\n", q.Step, q.ID, survey.LastQuestionID, q.Title)
	if q.Description != "" {
		fmt.Fprintln(r.out, q.Description)
	}
	for i, option := range q.Options {
		fmt.Fprintf(r.out, "  %d. %s\n", i+1, option.Label)
	}
	if q.Kind.IsChoice() {
		fmt.Fprintln(r.out, "Choose numbers or labels separated by commas, or leave blank for none.")
	}
	fmt.Fprint(r.out, "> ")
}

// finish completes the session when input ends early.
func (r *Runner) finish(session *survey.Session, readErr error) (models.SurveyData, error) {
	if !errors.Is(readErr, io.EOF) {
		return models.SurveyData{}, readErr
	}
	r.Log.Debug("input closed, finalizing answers so far")
	if !session.Completed {
		if err := session.Finish(r.Now()); err != nil {
			return models.SurveyData{}, err
		}
	}
	return session.Document()
}

// readLine returns the trimmed line. A final unterminated line is returned
// with a nil error.
func (r *Runner) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// parseSelection turns "1, 3, Fitbit" into option labels. Numbers refer to
// the printed option list; anything else is passed on as a label.
func parseSelection(q survey.Question, line string) []string {
	labels := []string{}
	for _, token := range strings.Split(line, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if n, err := strconv.Atoi(token); err == nil && n >= 1 && n <= len(q.Options) {
			labels = append(labels, q.Options[n-1].Label)
			continue
		}
		labels = append(labels, token)
	}
	return labels
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, survey.ErrNotANumber):
		return "Please enter a number."
	case errors.Is(err, survey.ErrUnknownOption):
		return "Please choose from the listed options."
	default:
		return "That answer could not be saved, please try again."
	}
}
