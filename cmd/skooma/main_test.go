package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "button.yaml")
	src := "$tag: button\nclass: [warning, important]\n$children: [Delete everything]\n"
	if err := os.WriteFile(file, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "render", file)
	if err != nil {
		t.Fatal(err)
	}
	if want := "<button class=\"warning important\">Delete everything</button>\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRenderStdinPage(t *testing.T) {
	out, err := execute(t, `{"$tag": "p", "$children": ["hi"]}`, "render", "-", "--format=json", "--page", "--title=Hello")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<title>Hello</title>", "<p>hi</p>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestRenderOutputFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.html")

	_, err := execute(t, "$tag: br\n", "render", "-", "-o", target)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<br/>\n" {
		t.Errorf("file = %q", data)
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := execute(t, "", "render", "-", "--format=toml"); err == nil {
		t.Error("unknown format should fail")
	}
	if _, err := execute(t, "$tag: 5\n", "render", "-"); err == nil || !strings.Contains(err.Error(), "E103") {
		t.Errorf("error = %v, want E103", err)
	}
}

func TestInitAndPublishToDirectory(t *testing.T) {
	project := filepath.Join(t.TempDir(), "docs")

	if _, err := execute(t, "", "init", project, "--template=site"); err != nil {
		t.Fatalf("init: %v", err)
	}

	outDir := filepath.Join(t.TempDir(), "dist")
	out, err := execute(t, "", "publish", project, "--out-dir", outDir, "--prefix", "v1")
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !strings.Contains(out, "Published 3 pages") {
		t.Errorf("output = %q", out)
	}
	for _, name := range []string{"index.html", "card.html", "icon.html"} {
		if _, err := os.Stat(filepath.Join(outDir, "v1", name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestPublishWithoutBucket(t *testing.T) {
	project := t.TempDir()
	if _, err := execute(t, "", "init", project); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "", "publish", project); err == nil || !strings.Contains(err.Error(), "E202") {
		t.Errorf("error = %v, want E202", err)
	}
}

func TestVersionShort(t *testing.T) {
	out, err := execute(t, "", "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if out != version+"\n" {
		t.Errorf("output = %q", out)
	}
}
