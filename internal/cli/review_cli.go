package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/fatih/color"

	apiv1 "github.com/at-ishikawa/flashcards/internal/api/v1"
	"github.com/at-ishikawa/flashcards/internal/srs"
)

var (
	errEnd = errors.New("end")
)

// Reviewer starts review sessions and grades cards, either in process or through the review service.
type Reviewer interface {
	StartLearning(ctx context.Context, collectionID int64) ([]*apiv1.DueCard, error)
	ReviewCard(ctx context.Context, cardID int64, grade srs.Grade) (*apiv1.Card, error)
}

// ReviewCLI manages the interactive review session of one collection.
type ReviewCLI struct {
	reviewer     Reviewer
	collectionID int64
	cards        []*apiv1.DueCard
	reviewed     int
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

// NewReviewCLI creates a review session reading answers from stdin.
func NewReviewCLI(reviewer Reviewer, collectionID int64, stdin io.Reader, stdout io.Writer) *ReviewCLI {
	return &ReviewCLI{
		reviewer:     reviewer,
		collectionID: collectionID,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

// Reviewed returns how many cards were graded in this session.
func (r *ReviewCLI) Reviewed() int {
	return r.reviewed
}

// nextCard returns the next card, fetching the cards that became due once the queue is empty.
func (r *ReviewCLI) nextCard(ctx context.Context) (*apiv1.DueCard, error) {
	if len(r.cards) == 0 {
		cards, err := r.reviewer.StartLearning(ctx, r.collectionID)
		if err != nil {
			return nil, fmt.Errorf("reviewer.StartLearning(%d) > %w", r.collectionID, err)
		}
		r.cards = cards
		if len(cards) == 0 {
			return nil, nil
		}
	}
	return r.cards[0], nil
}

func (r *ReviewCLI) Session(ctx context.Context) error {
	current, err := r.nextCard(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		_, _ = fmt.Fprintln(r.stdoutWriter, "No more cards to review!")
		return errEnd
	}

	_, _ = fmt.Fprintf(r.stdoutWriter, "[%s] ", current.GetCard().GetQueue())
	_, _ = r.bold.Fprintln(r.stdoutWriter, current.GetCard().GetText())
	_, _ = fmt.Fprintln(r.stdoutWriter, FormatGradeOptions(current.GetIntervals()))
	_, _ = fmt.Fprint(r.stdoutWriter, "Grade: ")

	input, err := r.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(input) == "" {
			return errEnd
		}
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("error reading input: %w", err)
		}
	}
	input = strings.TrimSpace(input)
	if input == "q" || input == "quit" || input == "exit" {
		_, _ = fmt.Fprintln(r.stdoutWriter, "Review session ended.")
		return errEnd
	}

	grade, err := ParseGradeInput(input)
	if err != nil {
		_, _ = fmt.Fprintf(r.stdoutWriter, "Invalid grade %q. Answer 1-4 or again, hard, good, easy.\n", input)
		return nil
	}

	cardID := current.GetCard().GetId()
	card, err := r.reviewer.ReviewCard(ctx, cardID, grade)
	if err != nil {
		return fmt.Errorf("reviewer.ReviewCard(%d) > %w", cardID, err)
	}
	r.cards = r.cards[1:]
	r.reviewed++

	WriteReviewResult(r.stdoutWriter, grade, card)
	_, _ = fmt.Fprintln(r.stdoutWriter)
	return nil
}

//go:generate mockgen -source=review_cli.go -destination=../mocks/cli/mock_review_cli.go -package=mock_cli

type Session interface {
	Session(ctx context.Context) error
}

// Run repeats session until it ends, fails, or the process is interrupted.
func Run(ctx context.Context, w io.Writer, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	// Buffered so the loop can exit after Run has returned on interrupt.
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(w, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// ParseGradeInput accepts a button number from 1 to 4 or a grade name.
func ParseGradeInput(input string) (srs.Grade, error) {
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(srs.Grades) {
			return 0, fmt.Errorf("%w: %d", srs.ErrInvalidGrade, n)
		}
		return srs.Grades[n-1], nil
	}
	return srs.ParseGrade(input)
}
