package walkthrough

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

const outFileContents = "welcome to go programming, its awesome !"

// OpenOrCreate opens path for reading, creating it when it does not exist.
// Any other open error is returned.
func OpenOrCreate(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("problem opening the file: %w", err)
	}
	f, err = os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("problem creating the file: %w", err)
	}
	return f, nil
}

// ReadDataV1 spells out every error check and reads line by line.
func ReadDataV1(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	r := bufio.NewReader(f)
	for {
		chunk, err := r.ReadString('\n')
		sb.WriteString(chunk)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// ReadDataV2 returns early on the first failure.
func ReadDataV2(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadDataV3 is the one-call form.
func ReadDataV3(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}

func files(_ context.Context, env *Env) error {
	w := env.Out

	contents, err := os.ReadFile(env.InfoFile)
	if err != nil {
		return fmt.Errorf("cannot read the file %s: %w", env.InfoFile, err)
	}
	fmt.Fprint(w, "\nfile contents >>\n\n")
	fmt.Fprintln(w, string(contents))

	if err := os.WriteFile(env.OutFile, []byte(outFileContents), 0o644); err != nil {
		return fmt.Errorf("could not create text file %s: %w", env.OutFile, err)
	}
	fmt.Fprintf(w, "wrote %d bytes to %s\n", len(outFileContents), env.OutFile)

	hello, err := OpenOrCreate(env.HelloFile)
	if err != nil {
		return err
	}
	if err := hello.Close(); err != nil {
		return fmt.Errorf("close %s: %w", env.HelloFile, err)
	}
	fmt.Fprintf(w, "opened %s\n", env.HelloFile)

	readers := []struct {
		name string
		fn   func(string) (string, error)
	}{
		{"v1", ReadDataV1},
		{"v2", ReadDataV2},
		{"v3", ReadDataV3},
	}
	for _, r := range readers {
		data, err := r.fn(env.HelloFile)
		if err != nil {
			fmt.Fprintf(w, "read_data %s : error : %v\n", r.name, err)
			continue
		}
		fmt.Fprintf(w, "read_data %s : %q\n", r.name, data)
	}
	return nil
}
