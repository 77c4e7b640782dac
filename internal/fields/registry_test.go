package fields

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactdesk/internal/domain"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestResolve(t *testing.T) {
	b, err := Resolve("first_name")
	require.NoError(t, err)
	assert.Equal(t, "first_name", b.Name)

	b, err = Resolve("  FirstName ")
	require.NoError(t, err)
	assert.Equal(t, "first_name", b.Name)

	b, err = Resolve("phone")
	require.NoError(t, err)
	assert.Equal(t, "phone_primary", b.Name)

	_, err = Resolve("favorite_color")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownField)
	assert.Contains(t, err.Error(), "favorite_color")
}

func TestApplyValidatesBeforeMutating(t *testing.T) {
	c := &domain.Contact{FirstName: "Deniz"}

	b, err := Resolve("first_name")
	require.NoError(t, err)

	require.Error(t, b.Apply(c, "Deniz99"))
	assert.Equal(t, "Deniz", c.FirstName, "rejected value must not be written")

	require.NoError(t, b.Apply(c, "ayşe"))
	assert.Equal(t, "Ayşe", c.FirstName, "names are normalized on write")
}

func TestApplyContactIDImmutable(t *testing.T) {
	c := &domain.Contact{ID: 7}

	b, err := Resolve("contact_id")
	require.NoError(t, err)

	require.Error(t, b.Apply(c, "8"))
	assert.Equal(t, int64(7), c.ID)
}

func TestApplyBirthDate(t *testing.T) {
	c := &domain.Contact{}

	b, err := Resolve("birth_date")
	require.NoError(t, err)

	require.NoError(t, b.Apply(c, "1990-06-01"))
	require.NotNil(t, c.BirthDate)
	assert.Equal(t, "1990-06-01", b.Extract(c))

	require.NoError(t, b.Apply(c, ""))
	assert.Nil(t, c.BirthDate, "empty input clears the date")

	require.Error(t, b.Apply(c, "yarın"))
}

func TestCompareStringsCaseInsensitive(t *testing.T) {
	b, err := Resolve("last_name")
	require.NoError(t, err)

	a := &domain.Contact{LastName: "YILMAZ"}
	z := &domain.Contact{LastName: "yilmaz"}
	assert.Zero(t, b.Compare(a, z))
}

func TestSortInPlaceStable(t *testing.T) {
	contacts := []*domain.Contact{
		{ID: 1, LastName: "Kaya", FirstName: "Ali"},
		{ID: 2, LastName: "Arslan", FirstName: "Bora"},
		{ID: 3, LastName: "Kaya", FirstName: "Cem"},
	}

	require.NoError(t, Sort(contacts, "last_name", true))

	assert.Equal(t, int64(2), contacts[0].ID)
	assert.Equal(t, int64(1), contacts[1].ID, "equal keys keep input order")
	assert.Equal(t, int64(3), contacts[2].ID)
}

func TestSortReversal(t *testing.T) {
	asc := []*domain.Contact{
		{ID: 1, BirthDate: date(1990, time.March, 1)},
		{ID: 2, BirthDate: nil},
		{ID: 3, BirthDate: date(1985, time.July, 9)},
		{ID: 4, BirthDate: date(2000, time.January, 2)},
	}
	desc := make([]*domain.Contact, len(asc))
	copy(desc, asc)

	require.NoError(t, Sort(asc, "birth_date", true))
	require.NoError(t, Sort(desc, "birth_date", false))

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
	assert.Nil(t, asc[len(asc)-1].BirthDate, "missing dates sort last ascending")
	assert.Nil(t, desc[0].BirthDate)
}

func TestSortUnknownField(t *testing.T) {
	contacts := []*domain.Contact{{ID: 1}, {ID: 2}}
	err := Sort(contacts, "height", true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownField))
	assert.Equal(t, int64(1), contacts[0].ID, "failed sort leaves input untouched")
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "contact_id")
	assert.Contains(t, names, "birth_date")
	assert.True(t, sort.StringsAreSorted(names))
}
