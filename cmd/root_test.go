package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/XaaXaaX/sdk/catalog/domain"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeDocument(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "payment.md")
	doc := `---
id: Payment
name: Payment
version: 0.0.1
summary: Handles all payments
---
# Payment
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestWriteThenGet(t *testing.T) {
	dir := t.TempDir()
	doc := writeDocument(t, dir)

	out, err := runCommand(t, "write", doc, "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote Payment@0.0.1")
	require.FileExists(t, filepath.Join(dir, "domains", "Payment", "index.md"))

	out, err = runCommand(t, "get", "Payment", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "id: Payment")
	require.Contains(t, out, "version: 0.0.1")
}

func TestGetMissingResourceFails(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, "get", "Ghost", "--dir", dir)
	require.Error(t, err)
}

func TestVersionThenHasVersion(t *testing.T) {
	dir := t.TempDir()
	doc := writeDocument(t, dir)

	_, err := runCommand(t, "write", doc, "--dir", dir)
	require.NoError(t, err)

	out, err := runCommand(t, "version", "Payment", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "Froze Payment")
	require.DirExists(t, filepath.Join(dir, "domains", "Payment", "versioned", "0.0.1"))

	out, err = runCommand(t, "has-version", "Payment", "0.0.1", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "true")

	out, err = runCommand(t, "has-version", "Payment", "latest", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "false")
}

func TestResourceArg(t *testing.T) {
	require.Equal(t, domain.ServiceRef{ID: "orders", Version: "0.0.1"}, resourceArg("orders@0.0.1"))
	require.Equal(t, domain.ServiceRef{ID: "orders"}, resourceArg("orders"))
	require.Equal(t, domain.ServiceRef{ID: "or@ders", Version: "1.0.0"}, resourceArg("or@ders@1.0.0"))
}
