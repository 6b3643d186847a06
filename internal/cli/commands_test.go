package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/criteria/internal/store"
)

const adultsDoc = "testdata/adults.yaml"

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	assert.NotEmpty(t, resp.TraceID)
	return resp
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", adultsDoc)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Criteria valid")
	assert.Contains(t, out, "filters: 4 (depth 2)")
	assert.Contains(t, out, "order:   age desc")
	assert.Contains(t, out, "page:    1 (size 2)")
}

func TestValidate_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "validate", adultsDoc)
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	data := resp.Data.(map[string]any)
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, float64(2), data["depth"])
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		args     func(t *testing.T) []string
		wantCode string
		wantExit int
	}{
		{
			name:     "missing file",
			args:     func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "none.yaml")} },
			wantCode: ErrCodeNotFound,
			wantExit: ExitCommandError,
		},
		{
			name:     "unsupported extension",
			args:     func(t *testing.T) []string { return []string{writeDoc(t, "c.toml", "")} },
			wantCode: ErrCodeLoadFailed,
			wantExit: ExitCommandError,
		},
		{
			name: "invalid operator",
			args: func(t *testing.T) []string {
				return []string{writeDoc(t, "c.yaml", "filters: {type: and, children: [{field: a, operator: '~', value: x}]}\n")}
			},
			wantCode: "INVALID_OPERATOR",
			wantExit: ExitFailure,
		},
		{
			name: "too deep",
			args: func(t *testing.T) []string {
				return []string{"--max-depth", "1", writeDoc(t, "c.yaml", "filters: {type: and, children: [{type: or}]}\n")}
			},
			wantCode: "CRITERIA_TOO_DEEP",
			wantExit: ExitFailure,
		},
		{
			name:     "unknown key",
			args:     func(t *testing.T) []string { return []string{writeDoc(t, "c.json", `{"order": "id"}`)} },
			wantCode: ErrCodeLoadFailed,
			wantExit: ExitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--format", "json", "validate"}, tt.args(t)...)
			out, err := execute(t, args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantExit, GetExitCode(err))

			resp := decodeResponse(t, out)
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestSQL(t *testing.T) {
	out, err := execute(t, "--format", "json", "sql", "--table", "users", adultsDoc)
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	data := resp.Data.(map[string]any)
	assert.Equal(t,
		`SELECT * FROM "users" WHERE "age" > ? AND ("name" = ? OR "name" = ? OR "email" LIKE ?) ORDER BY "age" DESC LIMIT 2 OFFSET 0`,
		data["sql"])
	assert.Equal(t, []any{"18", "alice", "bob", "%@gmail.com%"}, data["params"])
	assert.Equal(t, "sqlite", data["dialect"])
}

func TestSQL_RawPostgres(t *testing.T) {
	out, err := execute(t, "sql", "--table", "users", "--dialect", "postgres", "--raw", adultsDoc)
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT * FROM "users" WHERE "age" > '18' AND ("name" = 'alice' OR "name" = 'bob' OR "email" LIKE '%@gmail.com%') ORDER BY "age" DESC LIMIT 2 OFFSET 0`+"\n",
		out)
}

func TestSQL_Count(t *testing.T) {
	out, err := execute(t, "--format", "json", "sql", "--table", "users", "--dialect", "pg", "--count", adultsDoc)
	require.NoError(t, err)

	data := decodeResponse(t, out).Data.(map[string]any)
	assert.Equal(t,
		`SELECT COUNT(*) FROM "users" WHERE "age" > $1 AND ("name" = $2 OR "name" = $3 OR "email" LIKE $4)`,
		data["sql"])
}

func TestSQL_BadFlags(t *testing.T) {
	_, err := execute(t, "sql", "--table", "users", "--dialect", "oracle", adultsDoc)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	out, err := execute(t, "--format", "json", "sql", "--table", "users; drop", adultsDoc)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, ErrCodeBuildFailed, decodeResponse(t, out).Error.Code)

	_, err = execute(t, "sql", adultsDoc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table")
}

func TestEval(t *testing.T) {
	out, err := execute(t, "--format", "json", "eval", "--data", "testdata/users.json", adultsDoc)
	require.NoError(t, err)

	data := decodeResponse(t, out).Data.(map[string]any)
	// bob, carol and erin match; ordered by age desc and cut to one page of 2.
	assert.Equal(t, float64(3), data["total"])
	rows := data["rows"].([]any)
	require.Len(t, rows, 2)
	assert.Equal(t, "carol", rows[0].(map[string]any)["name"])
	assert.Equal(t, "erin", rows[1].(map[string]any)["name"])
}

func TestEval_Text(t *testing.T) {
	out, err := execute(t, "eval", "--data", "testdata/users.json", adultsDoc)
	require.NoError(t, err)
	assert.Contains(t, out, "3 row(s)")
	assert.Contains(t, out, "age=31 email=carol@gmail.com id=3 name=carol")
}

func TestEval_MissingData(t *testing.T) {
	_, err := execute(t, "eval", "--data", filepath.Join(t.TempDir(), "none.json"), adultsDoc)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func seedDatabase(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.db")
	st, err := store.Open(path, store.WithSchema(
		`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL, age INTEGER NOT NULL, email TEXT)`,
	))
	require.NoError(t, err)
	defer st.Close()

	rows := []store.Row{
		{"id": 1, "name": "alice", "age": 17, "email": "alice@gmail.com"},
		{"id": 2, "name": "bob", "age": 25, "email": "bob@example.com"},
		{"id": 3, "name": "carol", "age": 31, "email": "carol@gmail.com"},
		{"id": 4, "name": "dave", "age": 45, "email": nil},
		{"id": 5, "name": "erin", "age": 29, "email": "erin@GMAIL.com"},
	}
	require.NoError(t, st.InsertAll(context.Background(), "users", rows))
	return path
}

func TestQuery(t *testing.T) {
	db := seedDatabase(t)

	out, err := execute(t, "--format", "json", "query", "--db", db, "--table", "users", adultsDoc)
	require.NoError(t, err)

	data := decodeResponse(t, out).Data.(map[string]any)
	assert.Equal(t, float64(3), data["total"])
	rows := data["rows"].([]any)
	require.Len(t, rows, 2)
	assert.Equal(t, "carol", rows[0].(map[string]any)["name"])
	assert.Equal(t, "erin", rows[1].(map[string]any)["name"])
}

func TestQuery_MatchesEval(t *testing.T) {
	db := seedDatabase(t)

	queried, err := execute(t, "query", "--db", db, "--table", "users", adultsDoc)
	require.NoError(t, err)
	evaluated, err := execute(t, "eval", "--data", "testdata/users.json", adultsDoc)
	require.NoError(t, err)
	assert.Equal(t, evaluated, queried)
}

func TestQuery_CountOnly(t *testing.T) {
	db := seedDatabase(t)

	out, err := execute(t, "query", "--db", db, "--table", "users", "--count", adultsDoc)
	require.NoError(t, err)
	assert.Equal(t, "3 row(s)\n", out)
}

func TestQuery_Failures(t *testing.T) {
	db := seedDatabase(t)

	_, err := execute(t, "query", "--db", filepath.Join(t.TempDir(), "missing.db"), "--table", "users", adultsDoc)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	out, err := execute(t, "--format", "json", "query", "--db", db, "--table", "accounts", adultsDoc)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	resp := decodeResponse(t, out)
	assert.Equal(t, ErrCodeStoreFailed, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "no such table")
}

// deepDoc nests depth AND groups around a single name = bob filter.
func deepDoc(t *testing.T, depth int) string {
	t.Helper()
	doc := `{"field": "name", "operator": "=", "value": "bob"}`
	for i := 0; i < depth; i++ {
		doc = `{"type": "and", "children": [` + doc + `]}`
	}
	return writeDoc(t, "deep.json", `{"filters": `+doc+`}`)
}

func TestQuery_MaxDepth(t *testing.T) {
	db := seedDatabase(t)
	doc := deepDoc(t, 70)

	out, err := execute(t, "--format", "json", "query", "--db", db, "--table", "users", doc)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "CRITERIA_TOO_DEEP", decodeResponse(t, out).Error.Code)

	for _, limit := range []string{"100", "0"} {
		out, err := execute(t, "--max-depth", limit, "query", "--db", db, "--table", "users", doc)
		require.NoError(t, err, "--max-depth %s", limit)
		assert.True(t, strings.HasPrefix(out, "1 row(s)"), out)
		assert.Contains(t, out, "name=bob")
	}
}
