package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"wordlearner/internal/domain"
	"wordlearner/internal/repository"
	"wordlearner/internal/repository/jsonfile"
	"wordlearner/internal/service"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testOptions points the global flags at files inside a fresh temp dir.
func testOptions(t *testing.T) *RootOptions {
	t.Helper()

	dir := t.TempDir()
	return &RootOptions{
		WordsFile:    filepath.Join(dir, "words.json"),
		SettingsFile: filepath.Join(dir, "config.json"),
	}
}

// seedWords writes records straight through the repository.
func seedWords(t *testing.T, opts *RootOptions, words []domain.Word) {
	t.Helper()
	require.NoError(t, jsonfile.NewWordRepo(opts.WordsFile).Save(words))
}

// execute runs a command and returns its combined output.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "vocab", cmd.Use)

	wordsFlag := cmd.PersistentFlags().Lookup("words")
	require.NotNil(t, wordsFlag)
	assert.Equal(t, "words.json", wordsFlag.DefValue)

	settingsFlag := cmd.PersistentFlags().Lookup("settings")
	require.NotNil(t, settingsFlag)
	assert.Equal(t, "config.json", settingsFlag.DefValue)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"add", "list", "search", "rm", "edit", "drill"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestAddCommand(t *testing.T) {
	opts := testOptions(t)

	out, err := execute(t, NewAddCommand(opts), "apple", "苹果", "noun")
	require.NoError(t, err)
	assert.Contains(t, out, `Added "apple"`)
	assert.Contains(t, out, "total: 1")

	// The record landed in the file
	loaded, err := jsonfile.NewWordRepo(opts.WordsFile).Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, domain.Word{Word: "apple", Translation: "苹果", PartOfSpeech: "noun"}, loaded[0])
}

func TestAddCommand_Duplicate(t *testing.T) {
	opts := testOptions(t)
	seedWords(t, opts, []domain.Word{{Word: "apple", Translation: "苹果"}})

	_, err := execute(t, NewAddCommand(opts), "apple", "苹果")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrWordExists)
}

func TestAddCommand_CorruptFile(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.WriteFile(opts.WordsFile, []byte("not json"), 0o644))

	_, err := execute(t, NewAddCommand(opts), "apple", "苹果")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrCorruptData)
}

func TestListCommand(t *testing.T) {
	opts := testOptions(t)
	seedWords(t, opts, []domain.Word{
		{Word: "apple", Translation: "苹果", PartOfSpeech: "noun"},
		{Word: "run", Translation: "跑"},
	})

	out, err := execute(t, NewListCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "1. apple (noun): 苹果")
	assert.Contains(t, out, "2. run: 跑")
	assert.Contains(t, out, "total: 2")
}

func TestListCommand_HideTranslations(t *testing.T) {
	opts := testOptions(t)
	seedWords(t, opts, []domain.Word{{Word: "apple", Translation: "苹果"}})

	out, err := execute(t, NewListCommand(opts), "--hide-translations")
	require.NoError(t, err)
	assert.Contains(t, out, "apple")
	assert.NotContains(t, out, "苹果")
}

func TestListCommand_Empty(t *testing.T) {
	opts := testOptions(t)

	out, err := execute(t, NewListCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "The collection is empty")
}

func TestSearchCommand(t *testing.T) {
	opts := testOptions(t)
	seedWords(t, opts, []domain.Word{
		{Word: "apple", Translation: "苹果"},
		{Word: "application", Translation: "应用"},
		{Word: "pen", Translation: "笔"},
	})

	out, err := execute(t, NewSearchCommand(opts), "app")
	require.NoError(t, err)
	assert.Contains(t, out, "apple")
	assert.Contains(t, out, "application")
	assert.NotContains(t, out, "pen")
	assert.Contains(t, out, "2 of 3 words match")
}

func TestSearchCommand_NoMatch(t *testing.T) {
	opts := testOptions(t)
	seedWords(t, opts, []domain.Word{{Word: "apple", Translation: "苹果"}})

	out, err := execute(t, NewSearchCommand(opts), "zebra")
	require.NoError(t, err)
	assert.Contains(t, out, `Nothing matches "zebra"`)
}

func TestRemoveCommand(t *testing.T) {
	opts := testOptions(t)
	seedWords(t, opts, []domain.Word{
		{Word: "apple", Translation: "苹果"},
		{Word: "pen", Translation: "笔"},
	})

	out, err := execute(t, NewRemoveCommand(opts), "apple")
	require.NoError(t, err)
	assert.Contains(t, out, `Removed "apple"`)
	assert.Contains(t, out, "left: 1")

	loaded, err := jsonfile.NewWordRepo(opts.WordsFile).Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "pen", loaded[0].Word)
}

func TestRemoveCommand_NotFound(t *testing.T) {
	opts := testOptions(t)
	seedWords(t, opts, []domain.Word{{Word: "apple", Translation: "苹果"}})

	_, err := execute(t, NewRemoveCommand(opts), "pen")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrWordNotFound)
}

func TestEditCommand(t *testing.T) {
	opts := testOptions(t)
	seedWords(t, opts, []domain.Word{{Word: "apple", Translation: "苹果", PartOfSpeech: "noun"}})

	out, err := execute(t, NewEditCommand(opts), "apple", "--translation", "红苹果")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated: apple (noun): 红苹果")

	// The part of speech was kept
	loaded, err := jsonfile.NewWordRepo(opts.WordsFile).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Word{Word: "apple", Translation: "红苹果", PartOfSpeech: "noun"}, loaded[0])
}

func TestEditCommand_ClearPartOfSpeech(t *testing.T) {
	opts := testOptions(t)
	seedWords(t, opts, []domain.Word{{Word: "apple", Translation: "苹果", PartOfSpeech: "noun"}})

	_, err := execute(t, NewEditCommand(opts), "apple", "--pos", "")
	require.NoError(t, err)

	loaded, err := jsonfile.NewWordRepo(opts.WordsFile).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Word{Word: "apple", Translation: "苹果"}, loaded[0])
}

func TestEditCommand_NoFlags(t *testing.T) {
	opts := testOptions(t)
	seedWords(t, opts, []domain.Word{{Word: "apple", Translation: "苹果"}})

	_, err := execute(t, NewEditCommand(opts), "apple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
}

func TestDrillCommand_CountLimited(t *testing.T) {
	opts := testOptions(t)
	seedWords(t, opts, []domain.Word{
		{Word: "apple", Translation: "苹果"},
		{Word: "pen", Translation: "笔"},
	})

	// The first word prints immediately, so count 1 returns without a tick.
	out, err := execute(t, NewDrillCommand(opts), "--count", "1", "--mode", "sequential")
	require.NoError(t, err)
	assert.Contains(t, out, "apple: 苹果")
	assert.Contains(t, out, "1 word(s) shown.")
}

func TestDrillCommand_EmptyCollection(t *testing.T) {
	opts := testOptions(t)

	_, err := execute(t, NewDrillCommand(opts), "--count", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestDrillCommand_BadMode(t *testing.T) {
	opts := testOptions(t)
	seedWords(t, opts, []domain.Word{{Word: "apple", Translation: "苹果"}})

	_, err := execute(t, NewDrillCommand(opts), "--mode", "shuffled", "--count", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}
