package walkthrough

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samvad-hq/feature-tour/internal/logger"
)

func newTestEnv(t *testing.T) (*Env, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	info := filepath.Join(dir, "info.txt")
	require.NoError(t, os.WriteFile(info, []byte("some info"), 0o644))

	var buf bytes.Buffer
	return &Env{
		Out:           &buf,
		Log:           logger.NopLogger{},
		Args:          []string{"tour", "alpha", "beta"},
		InfoFile:      info,
		OutFile:       filepath.Join(dir, "out.txt"),
		HelloFile:     filepath.Join(dir, "hello.txt"),
		UptimeCommand: "uptime",
		RunID:         "run-test",
	}, &buf
}

func TestIsEven(t *testing.T) {
	n, even := IsEven(10)
	assert.Equal(t, uint32(10), n)
	assert.True(t, even)
	_, even = IsEven(11)
	assert.False(t, even)
}

func TestDirectionHeading(t *testing.T) {
	assert.Equal(t, "we are heading up !", Up.Heading())
	assert.Equal(t, "we are heading right !", Right.Heading())
	assert.Equal(t, "Direction(9)", Direction(9).String())
}

func TestDimensions(t *testing.T) {
	d := NewDimensions(99, 67)
	assert.Equal(t, uint32(6633), d.Area())
	assert.Equal(t, d.Area(), CalculateArea(&d))
	assert.Equal(t, "(width is 99 , height is 67) , Area : 6633", d.String())
}

func TestPersonVoiceBox(t *testing.T) {
	var buf bytes.Buffer
	p := Person{Name: "Giri2", Age: 3}
	p.Speak(&buf)
	assert.Equal(t, "Hello, my name is Giri2 and my age is 3\n", buf.String())
	assert.True(t, p.CanSpeak())
	assert.False(t, Person{Age: 2}.CanSpeak())
	assert.Equal(t, "My Name Is Giridhar, & I am 42", Person{Name: "Giridhar", Age: 42}.String())
}

func TestRuneAt(t *testing.T) {
	c, ok := RuneAt("0123456789", 9)
	assert.True(t, ok)
	assert.Equal(t, '9', c)

	_, ok = RuneAt("0123456789", 10)
	assert.False(t, ok)
	_, ok = RuneAt("abc", -1)
	assert.False(t, ok)

	c, ok = RuneAt("héllo", 1)
	assert.True(t, ok)
	assert.Equal(t, 'é', c)
}

func TestCheck(t *testing.T) {
	assert.Equal(t, "he created linux !", Check("linus"))
	assert.Equal(t, "they were US presidents !", Check("clinton"))
	assert.Equal(t, "they were US presidents !", Check("bush"))
	assert.Equal(t, "oops : does not match anything", Check("abc"))
}

func TestOccupation(t *testing.T) {
	occ, ok := Occupation("linus")
	assert.True(t, ok)
	assert.Equal(t, "linux kernel developer", occ)

	_, ok = Occupation("bhujanga")
	assert.False(t, ok)
}

func TestIsWeekday(t *testing.T) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		want := d != time.Saturday && d != time.Sunday
		assert.Equal(t, want, IsWeekday(d), d.String())
	}
}

func TestIsItFifty(t *testing.T) {
	v, err := IsItFifty(50)
	require.NoError(t, err)
	assert.Equal(t, uint32(50), v)

	_, err = IsItFifty(51)
	assert.ErrorIs(t, err, ErrNotFifty)
}

func TestRandomInRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		n := RandomInRange(1, 10)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 10)
	}
	assert.Equal(t, 7, RandomInRange(7, 7))
	assert.Equal(t, 3, RandomInRange(3, 3))

	for i := 0; i < 50; i++ {
		n := RandomInRange(10, 1)
		assert.True(t, n >= 1 && n <= 10, n)
	}
}

func TestRandomInRangeAtIntExtremes(t *testing.T) {
	assert.NotPanics(t, func() { RandomInRange(math.MinInt, math.MaxInt) })

	for i := 0; i < 100; i++ {
		n := RandomInRange(math.MaxInt-1, math.MaxInt)
		assert.True(t, n == math.MaxInt-1 || n == math.MaxInt, n)

		n = RandomInRange(math.MinInt, math.MinInt+2)
		assert.True(t, n >= math.MinInt && n <= math.MinInt+2, n)

		n = RandomInRange(-5, math.MaxInt)
		assert.GreaterOrEqual(t, n, -5)
	}
}

func TestRegexMatches(t *testing.T) {
	assert.True(t, fiveWordChars.MatchString(wordsText))
	assert.Equal(t, []string{"quick", "brown", "jumps"}, fiveLetters.FindAllString(wordsText, -1))
	assert.Equal(t,
		[]string{"64646", "64243", "64346", "66002", "46642", "33556"},
		fiveDigits.FindAllString(digitsText, -1))
}

func TestDecodeCustomer(t *testing.T) {
	c, err := DecodeCustomer([]byte(customerJSON))
	require.NoError(t, err)
	assert.Equal(t, "630c2272eabd3d30fe44d139", c.CustomerID)
	assert.Equal(t, uint32(28), c.Age)
	assert.Equal(t, "Mabel Haley", c.Name)

	generic, err := DecodeGeneric([]byte(customerJSON))
	require.NoError(t, err)
	assert.Equal(t, "brown", generic["eyecolor"])

	_, err = DecodeCustomer([]byte(`{"age": "old"}`))
	assert.Error(t, err)
	_, err = DecodeGeneric([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseMetaPrefersOGTags(t *testing.T) {
	meta, err := ParseMeta([]byte(samplePage))
	require.NoError(t, err)
	assert.Equal(t, "A Tour Of Features", meta.Title)
	assert.Equal(t, "Plain description", meta.Description)
	assert.Equal(t, "https://example.com/tour.png", meta.ImageURL)

	meta, err = ParseMeta([]byte(`<html><head><title> Only Title </title></head></html>`))
	require.NoError(t, err)
	assert.Equal(t, "Only Title", meta.Title)
	assert.Empty(t, meta.ImageURL)
}

func TestOpenOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")

	f, err := OpenOrCreate(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.FileExists(t, path)

	// second call opens the existing file
	f, err = OpenOrCreate(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = OpenOrCreate(filepath.Join(t.TempDir(), "missing-dir", "hello.txt"))
	assert.Error(t, err)
}

func TestReadDataVariantsAgree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	want := "line one\nline two\nno newline"
	require.NoError(t, os.WriteFile(path, []byte(want), 0o644))

	for _, fn := range []func(string) (string, error){ReadDataV1, ReadDataV2, ReadDataV3} {
		got, err := fn(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		_, err = fn(path + ".missing")
		assert.Error(t, err)
	}
}

func TestFilesSectionAbortsWithoutInfoFile(t *testing.T) {
	env, _ := newTestEnv(t)
	env.InfoFile = filepath.Join(t.TempDir(), "absent.txt")

	err := files(context.Background(), env)
	assert.Error(t, err)
}

func TestFilesSectionWritesAndCreates(t *testing.T) {
	env, buf := newTestEnv(t)

	require.NoError(t, files(context.Background(), env))
	out, err := os.ReadFile(env.OutFile)
	require.NoError(t, err)
	assert.Equal(t, outFileContents, string(out))
	assert.FileExists(t, env.HelloFile)
	assert.Contains(t, buf.String(), "some info")
	assert.Contains(t, buf.String(), `read_data v3 : ""`)
}

func TestCLIEchoesArgs(t *testing.T) {
	env, buf := newTestEnv(t)
	require.NoError(t, cliArgs(context.Background(), env))
	assert.True(t, strings.HasSuffix(buf.String(), "tour\nalpha\nbeta\n"))
}

func TestProcessFailureDoesNotAbort(t *testing.T) {
	env, buf := newTestEnv(t)
	env.UptimeCommand = "definitely-not-a-real-command-xyz"

	require.NoError(t, process(context.Background(), env))
	assert.Contains(t, buf.String(), "there was an error executing the command")
}

func TestRunCommandRejectsEmpty(t *testing.T) {
	_, err := RunCommand(context.Background(), "   ")
	assert.Error(t, err)
}

func TestStaticSectionsRun(t *testing.T) {
	env, buf := newTestEnv(t)
	env.UptimeCommand = "echo up 1 day"

	for _, s := range Sections(FetchSection(nil, nil, nil)) {
		require.NoError(t, s.Run(context.Background(), env), s.Name)
	}

	out := buf.String()
	assert.Contains(t, out, "Hello, world!")
	assert.Contains(t, out, "mutRef is => 155.55")
	assert.Contains(t, out, "Rectangle is square ? true")
	assert.Contains(t, out, "scores contains key 'go programming' : true")
	assert.Contains(t, out, "Error ! myNum is not 50 , it is actually : 51")
	assert.Contains(t, out, "method-2 : age : 28")
	assert.Contains(t, out, "no fetcher configured")
	assert.Contains(t, out, "up 1 day")
}
