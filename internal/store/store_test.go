package store

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"

	"aesvec/internal/services/vector"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection to :memory: would get its own empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	st, err := newStore(db)
	require.NoError(t, err)
	return st
}

func TestNewRun(t *testing.T) {
	scenarios, err := vector.Select([]string{"B", "H"})
	require.NoError(t, err)
	iv := make([]byte, 16)
	vs, err := vector.Generate(scenarios, vector.Options{IV: iv})
	require.NoError(t, err)

	run := NewRun("cli", vector.FormatRSP, 0, vs)
	require.NoError(t, uuid.Validate(run.ID))
	require.Equal(t, "cli", run.Source)
	require.Equal(t, "rsp", run.Format)
	require.Equal(t, 1, run.Count)
	require.Len(t, run.Vectors, 2)

	b := run.Vectors[0]
	require.Equal(t, run.ID, b.RunID)
	require.Equal(t, "B", b.Case)
	require.Equal(t, 192, b.KeyBits)
	require.Nil(t, b.IVHex)
	require.Equal(t, "fae3c6768f90586a3e52672c6205cab4", b.CiphertextHex)

	var p map[string]any
	require.NoError(t, json.Unmarshal(b.Params, &p))
	require.Equal(t, "key1920", p["key_input"])
	require.Equal(t, "SHA-256", p["key_hash"])
	require.EqualValues(t, 24, p["key_len"])
	require.NotContains(t, p, "segment_bits")

	h := run.Vectors[1]
	require.NotNil(t, h.IVHex)
	require.Equal(t, "00000000000000000000000000000000", *h.IVHex)
	var hp map[string]any
	require.NoError(t, json.Unmarshal(h.Params, &hp))
	require.EqualValues(t, 8, hp["segment_bits"])
	require.Equal(t, "SHA-224", hp["data_hash"])
	require.NotEqual(t, b.ID, h.ID)
}

func TestRecordAndGetRun(t *testing.T) {
	st := openMemory(t)
	ctx := context.Background()

	vs, err := vector.Generate(vector.Cases, vector.Options{IV: make([]byte, 16)})
	require.NoError(t, err)
	run := NewRun("cli", vector.FormatHex, 1, vs)
	require.NoError(t, st.Record(ctx, run))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.Equal(t, "cli", got.Source)
	require.Equal(t, "hex", got.Format)
	require.Len(t, got.Vectors, 8)
	for i, c := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		require.Equal(t, c, got.Vectors[i].Case)
		require.Equal(t, run.ID, got.Vectors[i].RunID)
	}
	require.Equal(t, "9c29e46cf1ce04e83d3a6b167b7be14a", got.Vectors[0].CiphertextHex)
	require.Nil(t, got.Vectors[0].IVHex)
	require.NotNil(t, got.Vectors[7].IVHex)

	var p map[string]any
	require.NoError(t, json.Unmarshal(got.Vectors[7].Params, &p))
	require.EqualValues(t, 8, p["segment_bits"])

	runs, err := st.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, run.ID, runs[0].ID)
	require.Empty(t, runs[0].Vectors)

	_, err = st.GetRun(ctx, uuid.NewString())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRecordRollsBack(t *testing.T) {
	st := openMemory(t)
	ctx := context.Background()

	vs, err := vector.Generate(vector.Cases[:2], vector.Options{})
	require.NoError(t, err)
	run := NewRun("cli", vector.FormatRepr, 1, vs)
	run.Vectors[1].ID = run.Vectors[0].ID
	require.Error(t, st.Record(ctx, run))

	_, err = st.GetRun(ctx, run.ID)
	require.ErrorIs(t, err, ErrNotFound)
	runs, err := st.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, runs)
}

func TestGormLogsToStderr(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	stderr := os.Stderr
	os.Stderr = w
	cfg := gormConfig()
	os.Stderr = stderr

	db, err := gorm.Open(sqlite.Open(":memory:"), cfg)
	require.NoError(t, err)
	require.Error(t, db.Exec("SELECT * FROM missing_table").Error)
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Contains(t, string(out), "missing_table")
}
