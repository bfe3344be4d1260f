package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validDTO() *CreateDTO {
	return &CreateDTO{
		Date:            "2024-01-15",
		PersonID:        1,
		TaskID:          2,
		DurationMinutes: 30,
	}
}

func TestCreateDTO_Ok(t *testing.T) {
	fieldErrors, ok := validDTO().Ok()
	require.True(t, ok)
	require.Empty(t, fieldErrors)
}

func TestCreateDTO_ZeroMinutesRejected(t *testing.T) {
	dto := validDTO()
	dto.DurationMinutes = 0

	fieldErrors, ok := dto.Ok()
	require.False(t, ok)
	require.Equal(t, "Minutes field should be greater than 0.", fieldErrors["DurationMinutes"])
}

func TestCreateDTO_NegativeMinutesRejected(t *testing.T) {
	dto := validDTO()
	dto.DurationMinutes = -15

	fieldErrors, ok := dto.Ok()
	require.False(t, ok)
	require.Equal(t, "Minutes field should be greater than 0.", fieldErrors["DurationMinutes"])
}

func TestCreateDTO_MalformedDateRejected(t *testing.T) {
	dto := validDTO()
	dto.Date = "15/01/2024"

	fieldErrors, ok := dto.Ok()
	require.False(t, ok)
	require.Contains(t, fieldErrors, "Date")
}

func TestCreateDTO_MissingSelectionsRejected(t *testing.T) {
	dto := validDTO()
	dto.PersonID = 0
	dto.TaskID = 0

	fieldErrors, ok := dto.Ok()
	require.False(t, ok)
	require.Equal(t, "This field is required.", fieldErrors["PersonID"])
	require.Equal(t, "This field is required.", fieldErrors["TaskID"])
}

func TestCreateDTO_ToEntity(t *testing.T) {
	entity, err := validDTO().ToEntity()
	require.NoError(t, err)
	require.Equal(t, "2024-01-15", entity.Date().Format(DateLayout))
	require.Equal(t, 1, entity.PersonID())
	require.Equal(t, 2, entity.TaskID())
	require.Equal(t, 30, entity.DurationMinutes())
}

func TestCreateDTO_NormalizeTrimsDate(t *testing.T) {
	dto := validDTO()
	dto.Date = "  2024-01-15  "

	_, ok := dto.Ok()
	require.True(t, ok)
	require.Equal(t, "2024-01-15", dto.Date)
}
