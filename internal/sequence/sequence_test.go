package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		bases   string
		want    string
		wantErr bool
	}{
		{"valid uppercase", "ATGC", "ATGC", false},
		{"lowercase normalized", "atgc", "ATGC", false},
		{"ambiguous allowed", "ATGNC", "ATGNC", false},
		{"empty", "", "", true},
		{"invalid base", "ATXC", "", true},
		{"RNA base rejected for DNA", "AUGC", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := New(tt.bases)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, seq.Bases)
				assert.Equal(t, DNA, seq.SeqType)
			}
		})
	}
}

func TestNewErrorTypes(t *testing.T) {
	_, err := New("")
	var emptyErr *EmptySequenceError
	require.ErrorAs(t, err, &emptyErr)

	_, err = New("ATXC")
	var baseErr *InvalidBaseError
	require.ErrorAs(t, err, &baseErr)
	assert.Equal(t, 2, baseErr.Position)
	assert.Equal(t, 'X', baseErr.Found)
}

func TestWithID(t *testing.T) {
	seq, err := WithID("ATGC", "seq1")
	require.NoError(t, err)
	assert.Equal(t, "seq1", seq.ID)

	_, err = WithID("ATGC", "")
	require.Error(t, err)
}

func TestWithMetadataRNA(t *testing.T) {
	seq, err := WithMetadata("AUGC", "r1", "ribosomal", RNA)
	require.NoError(t, err)
	assert.Equal(t, RNA, seq.SeqType)
	assert.True(t, seq.IsValid())

	_, err = WithMetadata("ATGC", "r1", "", RNA)
	require.Error(t, err, "T is not a valid RNA base")
}

func TestWindow(t *testing.T) {
	seq, err := New("ATGCATGC")
	require.NoError(t, err)

	tests := []struct {
		name    string
		offset  int
		k       int
		want    string
		wantErr bool
	}{
		{"start", 0, 4, "ATGC", false},
		{"middle", 2, 3, "GCA", false},
		{"full", 0, 8, "ATGCATGC", false},
		{"last window", 5, 3, "TGC", false},
		{"negative offset", -1, 3, "", true},
		{"zero length", 0, 0, "", true},
		{"past end", 6, 3, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := seq.Window(tt.offset, tt.k)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBaseAt(t *testing.T) {
	seq, _ := New("ATGC")

	b, ok := seq.BaseAt(1)
	assert.True(t, ok)
	assert.Equal(t, 'T', b)

	_, ok = seq.BaseAt(4)
	assert.False(t, ok)

	_, ok = seq.BaseAt(-1)
	assert.False(t, ok)
}

func TestGCContent(t *testing.T) {
	tests := []struct {
		bases string
		want  float64
	}{
		{"GGCC", 1.0},
		{"ATAT", 0.0},
		{"ATGC", 0.5},
	}

	for _, tt := range tests {
		seq, err := New(tt.bases)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, seq.GCContent(), 0.0001)
	}
}

func TestBaseCounts(t *testing.T) {
	seq, _ := New("AATGCNC")
	counts := seq.BaseCounts()

	assert.Equal(t, 2, counts.A)
	assert.Equal(t, 2, counts.C)
	assert.Equal(t, 1, counts.G)
	assert.Equal(t, 1, counts.T)
	assert.Equal(t, 1, counts.N)
	assert.Equal(t, seq.Len(), counts.Total())
}

func TestAmbiguous(t *testing.T) {
	seq, _ := New("ATGNNC")
	assert.True(t, seq.HasAmbiguous())
	assert.Equal(t, 2, seq.CountAmbiguous())

	clean, _ := New("ATGC")
	assert.False(t, clean.HasAmbiguous())
	assert.Equal(t, 0, clean.CountAmbiguous())
}

func TestFindMotifPositions(t *testing.T) {
	seq, _ := New("ATGATGATG")

	positions, err := seq.FindMotifPositions("ATG")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 6}, positions)

	positions, err = seq.FindMotifPositions("atg")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 6}, positions, "motif lookup is case-insensitive")

	positions, err = seq.FindMotifPositions("CCCC")
	require.NoError(t, err)
	assert.Empty(t, positions)

	_, err = seq.FindMotifPositions("")
	require.Error(t, err)
}

func TestToFASTA(t *testing.T) {
	seq, _ := WithID("ATGC", "seq1")
	assert.Equal(t, ">seq1\nATGC\n", seq.ToFASTA())

	anon, _ := New("ATGC")
	assert.Equal(t, ">sequence\nATGC\n", anon.ToFASTA())
}

func TestEqual(t *testing.T) {
	a, _ := New("ATGC")
	b, _ := New("atgc")
	c, _ := New("ATGA")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
