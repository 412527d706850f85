package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/devfest-vale/workshop-enrollment/internal/models"
)

func birth(t *testing.T, d string) time.Time {
	t.Helper()
	parsed, err := time.Parse(models.DateLayout, d)
	require.NoError(t, err)
	return parsed
}

func TestParticipantFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "participantes.dat")
	f := &ParticipantFile{Path: path}

	in := []*models.Participant{
		{
			Name:       "Ana Souza",
			NationalID: "12345678900",
			Sex:        "Feminino",
			BirthDate:  birth(t, "15/03/2008"),
			Workshops:  []string{"jQuery", "Arduino"},
		},
		{
			Name:       "Bruno Lima",
			NationalID: "98765432100",
			Sex:        "Masculino",
			BirthDate:  birth(t, "01/06/2006"),
			Workshops:  []string{"Google Apps"},
		},
	}
	require.NoError(t, f.Save(in))

	out, err := f.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)

	for i := range in {
		require.Equal(t, in[i].Name, out[i].Name)
		require.Equal(t, in[i].NationalID, out[i].NationalID)
		require.Equal(t, in[i].Sex, out[i].Sex)
		require.True(t, in[i].BirthDate.Equal(out[i].BirthDate))
		require.Equal(t, in[i].Workshops, out[i].Workshops)
	}
}

func TestParticipantFileOptionalTitles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "participantes.dat")
	lines := "Carla Dias;11122233344;Feminino;10/01/1995\n" +
		"Davi Melo;55566677788;Masculino;20/07/2000;\n"
	require.NoError(t, os.WriteFile(path, []byte(lines), 0644))

	f := &ParticipantFile{Path: path}
	out, err := f.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.Empty(t, out[0].Workshops, "missing titles field means no enrollments")
	require.Empty(t, out[1].Workshops, "empty titles field means no enrollments")
}

func TestParticipantFileSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "participantes.dat")
	lines := "Ana;111;Feminino;15/03/2008;jQuery\n" +
		"only;three;fields\n" +
		"Bad Date;222;Masculino;2008-03-15;jQuery\n" +
		"Bruno;333;Masculino;01/06/2006;Arduino,Google Apps\n"
	require.NoError(t, os.WriteFile(path, []byte(lines), 0644))

	f := &ParticipantFile{Path: path}
	out, err := f.Load()
	require.NoError(t, err, "malformed lines must not fail the whole load")
	require.Len(t, out, 2)

	require.Equal(t, "Ana", out[0].Name)
	require.Equal(t, "Bruno", out[1].Name)
	require.Equal(t, []string{"Arduino", "Google Apps"}, out[1].Workshops)
}

func TestParticipantFileMissing(t *testing.T) {
	f := &ParticipantFile{Path: filepath.Join(t.TempDir(), "nope.dat")}

	out, err := f.Load()
	require.NoError(t, err)
	require.Empty(t, out)
}
