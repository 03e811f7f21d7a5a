package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/alexanderramin/atlas/internal/catalog"
	"github.com/alexanderramin/atlas/internal/cohort"
	"github.com/alexanderramin/atlas/internal/config"
	"github.com/alexanderramin/atlas/internal/repository"
	"github.com/alexanderramin/atlas/internal/service"
	"github.com/alexanderramin/atlas/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB with a fixed seed.
func testApp(t *testing.T, observers ...service.UseCaseObserver) *App {
	t.Helper()
	seed := int64(42)
	cfg := config.Default()
	cfg.Seed = &seed

	repo := repository.NewSQLiteCourseRepo(testutil.NewTestDB(t))
	return &App{
		Atlas:  service.NewAtlasService(repo, cohort.NewSeededSource, cfg, observers...),
		Config: cfg,
	}
}

// useCaseLog records the names of observed use cases.
type useCaseLog struct {
	mu    sync.Mutex
	names []string
}

func (l *useCaseLog) ObserveUseCase(_ context.Context, e service.UseCaseEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.names = append(l.names, e.Name)
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// executeCmd runs a cobra command and captures stdout/stderr without ANSI
// escapes.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansiPattern.ReplaceAllString(buf.String(), ""), err
}

// --- root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	output, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, output, "atlas")
	assert.Contains(t, output, "explore")
	assert.Contains(t, output, "--seed")
}

func TestRootCmd_SeedFlagReloads(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "--seed", "99", "table")
	require.NoError(t, err)
	assert.Contains(t, output, "seed 99")

	snap, err := app.Atlas.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(99), snap.Seed)
}

// --- table ---

func TestTableCmd_All(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "table")
	require.NoError(t, err)

	for _, c := range catalog.Load() {
		assert.Contains(t, output, c.Name)
	}
	assert.Contains(t, output, "29 courses")
	assert.Contains(t, output, "seed 42")
}

func TestTableCmd_Filters(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"science advanced", []string{"--dept", "science", "--type", "Advanced"}, "5 courses"},
		{"electives", []string{"--type", "elective"}, "13 courses"},
		{"math medium or high", []string{"--dept", "Math", "--focus", "High,Medium"}, "4 courses"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := executeCmd(t, testApp(t), append([]string{"table"}, tc.args...)...)
			require.NoError(t, err)
			assert.Contains(t, output, tc.want)
		})
	}
}

func TestTableCmd_HelpListsDepartments(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "table", "--help")
	require.NoError(t, err)
	assert.Contains(t, output, "Filter by department (Math, Science, History)")
}

func TestTableCmd_UnknownDepartment(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "table", "--dept", "Art")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown department")
}

// --- deib ---

func TestDEIBCmd_ExcludesLowByDefault(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "deib")
	require.NoError(t, err)
	assert.Contains(t, output, "DEIB HIERARCHY")
	assert.Contains(t, output, "History of Queer Theater")
	assert.NotContains(t, output, "UAS Adv Chemistry")

	output, err = executeCmd(t, app, "deib", "--include-low")
	require.NoError(t, err)
	assert.Contains(t, output, "UAS Adv Chemistry")
	assert.Contains(t, output, "Low focus")
}

// --- homework ---

func TestHomeworkCmd_DefaultThreshold(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "homework")
	require.NoError(t, err)
	assert.Contains(t, output, "HOMEWORK BY DEPARTMENT")
	assert.Contains(t, output, "WELLNESS WATCHLIST (≥ 5.0H)")
	assert.Contains(t, output, "UAS Adv Chemistry")
}

func TestHomeworkCmd_MinHours(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "homework", "--min-hours", "5.5")
	require.NoError(t, err)
	assert.Contains(t, output, "WELLNESS WATCHLIST (≥ 5.5H)")

	_, err = executeCmd(t, testApp(t), "homework", "--min-hours", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

// --- gender ---

func TestGenderCmd(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "gender", "--width", "10")
	require.NoError(t, err)
	assert.Contains(t, output, "GENDER COMPOSITION")
	assert.Contains(t, output, "Marine Biology")
	assert.Contains(t, output, "non-binary")
}

// --- words ---

func TestWordsCmd_NamedCourse(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "words", "History of Queer Theater", "-k", "3")
	require.NoError(t, err)
	assert.Contains(t, output, "TOP WORDS · HISTORY OF QUEER THEATER")
	assert.Contains(t, output, " 3. ")
	assert.NotContains(t, output, " 4. ")
	assert.Contains(t, output, "of 150 comment tokens · inclusive vocabulary")
}

func TestWordsCmd_SingleLookup(t *testing.T) {
	log := &useCaseLog{}
	_, err := executeCmd(t, testApp(t, log), "words", "UAS Adv Chemistry")
	require.NoError(t, err)
	assert.Equal(t, []string{"enrich-catalog", "top-words"}, log.names)
}

func TestWordsCmd_UnknownCourse(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "words", "Astrology")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrCourseNotFound)
}

func TestWordsCmd_NoArgNonInteractive(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "words")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "course name required")
}

func TestWordsCmd_PicksCourseWhenInteractive(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	var offered []string
	app.PickCourse = func(names []string) (string, error) {
		offered = names
		return "UAS Adv Chemistry", nil
	}

	output, err := executeCmd(t, app, "words")
	require.NoError(t, err)
	assert.Len(t, offered, catalog.Len())
	assert.Contains(t, output, "TOP WORDS · UAS ADV CHEMISTRY")
	assert.Contains(t, output, "rigor vocabulary")
	assert.Contains(t, output, " 8. ", "default k from config")
}

// --- export ---

func TestExportCmd_WritesDashboardAndWords(t *testing.T) {
	dir := t.TempDir()
	output, err := executeCmd(t, testApp(t),
		"export", "--dir", dir, "--format", "svg", "--course", "UAS Adv Chemistry")
	require.NoError(t, err)

	assert.Equal(t, 5, strings.Count(output, "wrote "))
	for _, name := range []string{
		"gender_composition.svg",
		"homework_by_department.svg",
		"rigor_relevance.svg",
		"deib_share.svg",
		"words_uas-adv-chemistry.svg",
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestExportCmd_CourseLookedUpOnce(t *testing.T) {
	log := &useCaseLog{}
	_, err := executeCmd(t, testApp(t, log),
		"export", "--dir", t.TempDir(), "--format", "svg", "--course", "Marine Biology")
	require.NoError(t, err)
	assert.Equal(t, []string{"enrich-catalog", "top-words"}, log.names)
}

func TestExportCmd_BadFormat(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "export", "--dir", t.TempDir(), "--format", "gif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported chart format")
}

func TestExportCmd_UnknownCourse(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "export", "--dir", t.TempDir(), "--course", "Astrology")
	assert.ErrorIs(t, err, service.ErrCourseNotFound)
}

// --- explore ---

func TestExploreCmd_RequiresTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "explore")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
