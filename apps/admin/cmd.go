package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/color"
	"golang.org/x/term"

	"github.com/trezcool/tutormate/core/groupclass"
	"github.com/trezcool/tutormate/core/recording"
	"github.com/trezcool/tutormate/core/tutor"
)

const defaultWidth = 80

var (
	getTermSizeFunc = term.GetSize // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	tutorSvc   *tutor.Service
	classSvc   *groupclass.Service
	recSvc     *recording.Service
	validate   *validator.Validate
	translator ut.Translator
	out        *color.Color
}

func newCommandLine(
	tutorSvc *tutor.Service,
	classSvc *groupclass.Service,
	recSvc *recording.Service,
	validate *validator.Validate,
	translator ut.Translator,
	w io.Writer,
) *commandLine {
	out := color.New()
	out.SetOutput(w)
	return &commandLine{
		tutorSvc:   tutorSvc,
		classSvc:   classSvc,
		recSvc:     recSvc,
		validate:   validate,
		translator: translator,
		out:        out,
	}
}

func (cli *commandLine) printUsage() {
	cli.out.Println("Usage:")
	cli.out.Println("  tutors [-department D1,D2] [-query Q] [-sort KEY] [-min-price N] [-max-price N] [-min-rating N] [-verified] [-group-classes] [-recordings] - list tutors")
	cli.out.Println("  tutor -id ID [-date YYYY-MM-DD] - show a tutor's profile")
	cli.out.Println("  skills - list every skill taught, for -query")
	cli.out.Println("  classes [-department D] - list group classes")
	cli.out.Println("  recordings [-department D] [-search Q] - list recorded sessions")
}

// width is the terminal width, or defaultWidth when stdout is not a terminal.
func (cli *commandLine) width() int {
	w, _, err := getTermSizeFunc(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out.Output())
	return fs
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	tutorsCmd := cli.newFlagSet("tutors")
	tutorsDept := tutorsCmd.String("department", "", "Comma separated departments.")
	tutorsQuery := tutorsCmd.String("query", "", "Matches tutor names and skills.")
	tutorsSort := tutorsCmd.String("sort", string(tutor.SortRecommended), "One of recommended, price-low, price-high, rating, sessions.")
	tutorsMinPrice := tutorsCmd.Float64("min-price", tutor.DefaultMinPrice, "Minimum hourly rate.")
	tutorsMaxPrice := tutorsCmd.Float64("max-price", tutor.DefaultMaxPrice, "Maximum hourly rate.")
	tutorsMinRating := tutorsCmd.Float64("min-rating", 0, "Minimum rating.")
	tutorsVerified := tutorsCmd.Bool("verified", false, "Verified tutors only.")
	tutorsGroup := tutorsCmd.Bool("group-classes", false, "Tutors offering group classes only.")
	tutorsRecordings := tutorsCmd.Bool("recordings", false, "Tutors with recordings only.")

	tutorCmd := cli.newFlagSet("tutor")
	tutorID := tutorCmd.String("id", "", "The tutor's id.")
	tutorDate := tutorCmd.String("date", "", "The date to list open slots for; the first available date by default.")

	classesCmd := cli.newFlagSet("classes")
	classesDept := classesCmd.String("department", groupclass.AllDepartments, "The department to list classes of.")

	recordingsCmd := cli.newFlagSet("recordings")
	recordingsDept := recordingsCmd.String("department", recording.AllDepartments, "The department to list recordings of.")
	recordingsSearch := recordingsCmd.String("search", "", "Matches titles, subjects and topics.")

	switch args[1] {
	case "tutors":
		if err := tutorsCmd.Parse(args[2:]); err != nil {
			return err
		}
		crit := tutor.Criteria{
			PriceRange:          tutor.PriceRange{Min: *tutorsMinPrice, Max: *tutorsMaxPrice},
			MinRating:           *tutorsMinRating,
			Query:               *tutorsQuery,
			VerifiedOnly:        *tutorsVerified,
			GroupClassesOnly:    *tutorsGroup,
			RecordingsAvailable: *tutorsRecordings,
			SortBy:              tutor.SortKey(*tutorsSort),
		}
		if *tutorsDept != "" {
			crit.Departments = strings.Split(*tutorsDept, ",")
		}
		return cli.listTutors(crit)
	case "tutor":
		if err := tutorCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *tutorID == "" {
			tutorCmd.Usage()
			return errHelp
		}
		return cli.showTutor(*tutorID, *tutorDate)
	case "skills":
		return cli.listSkills()
	case "classes":
		if err := classesCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listClasses(*classesDept)
	case "recordings":
		if err := recordingsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listRecordings(*recordingsDept, *recordingsSearch)
	default:
		cli.printUsage()
		return errHelp
	}
}

// validationError flattens validation failures into one readable error.
func (cli *commandLine) validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+": "+fe.Translate(cli.translator))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// truncate cuts s to the terminal width.
func (cli *commandLine) truncate(s string) string {
	w := cli.width()
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 3 {
		return string(r[:w])
	}
	return string(r[:w-3]) + "..."
}
