package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func newTestStore(t *testing.T, names ...string) *StudentStore {
	t.Helper()

	s := NewStudentStore(nil)
	for _, name := range names {
		_, err := s.Add(context.Background(), name)
		require.NoError(t, err)
	}
	return s
}

func TestStudentStore_Add(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	student, err := s.Add(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, "Ana", student.Name)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, student.Grades)
	assert.Zero(t, student.Attendance)
	assert.False(t, student.AttendanceRecorded)

	t.Run("duplicate_keeps_first_record", func(t *testing.T) {
		_, err := s.SetGrades(ctx, "Ana", []float64{9, 9, 9, 9, 9})
		require.NoError(t, err)

		_, err = s.Add(ctx, "Ana")
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrStudentExists)
		assert.True(t, store.IsDuplicateError(err))

		got, err := s.Get(ctx, "Ana")
		require.NoError(t, err)
		assert.Equal(t, []float64{9, 9, 9, 9, 9}, got.Grades)

		count, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("empty_name", func(t *testing.T) {
		_, err := s.Add(ctx, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestStudentStore_GetNotFound(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrStudentNotFound)

	var storeErr *store.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "get", storeErr.Operation)
	assert.Equal(t, "ghost", storeErr.Key)
}

func TestStudentStore_ListPreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t, "Carla", "Ana", "Bruno", "Davi")

	require.NoError(t, s.Remove(ctx, "Ana"))
	_, err := s.Add(ctx, "Ana")
	require.NoError(t, err)

	students, err := s.List(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(students))
	for _, st := range students {
		names = append(names, st.Name)
	}
	assert.Equal(t, []string{"Carla", "Bruno", "Davi", "Ana"}, names)
}

func TestStudentStore_Remove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t, "Ana")

	require.NoError(t, s.Remove(ctx, "Ana"))

	_, err := s.Get(ctx, "Ana")
	assert.ErrorIs(t, err, store.ErrStudentNotFound)

	err = s.Remove(ctx, "Ana")
	assert.ErrorIs(t, err, store.ErrStudentNotFound)
}

func TestStudentStore_SetGrades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	valid := [][]float64{
		{0, 0, 0, 0, 0},
		{10, 10, 10, 10, 10},
		{6, 7, 8, 9, 10},
		{0.5, 9.25, 3, 10, 0},
	}
	for i, grades := range valid {
		t.Run(fmt.Sprintf("valid_%d", i), func(t *testing.T) {
			s := newTestStore(t, "Ana")

			updated, err := s.SetGrades(ctx, "Ana", grades)
			require.NoError(t, err)
			assert.Equal(t, grades, updated.Grades)

			got, err := s.Get(ctx, "Ana")
			require.NoError(t, err)
			assert.Equal(t, grades, got.Grades)
		})
	}

	invalid := map[string][]float64{
		"four_grades":  {1, 2, 3, 4},
		"six_grades":   {1, 2, 3, 4, 5, 6},
		"negative":     {1, 2, 3, 4, -1},
		"above_ten":    {11, 2, 3, 4, 5},
		"one_bad_last": {10, 10, 10, 10, 10.5},
	}
	for name, grades := range invalid {
		t.Run(name, func(t *testing.T) {
			s := newTestStore(t, "Ana")
			prior := []float64{5, 5, 5, 5, 5}
			_, err := s.SetGrades(ctx, "Ana", prior)
			require.NoError(t, err)

			_, err = s.SetGrades(ctx, "Ana", grades)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)

			got, err := s.Get(ctx, "Ana")
			require.NoError(t, err)
			assert.Equal(t, prior, got.Grades, "rejected update must leave the record unchanged")
		})
	}

	t.Run("not_found_before_validation", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.SetGrades(ctx, "ghost", []float64{1})
		assert.ErrorIs(t, err, store.ErrStudentNotFound)
	})

	t.Run("caller_slice_not_aliased", func(t *testing.T) {
		s := newTestStore(t, "Ana")
		grades := []float64{1, 2, 3, 4, 5}
		_, err := s.SetGrades(ctx, "Ana", grades)
		require.NoError(t, err)

		grades[0] = 10

		got, err := s.Get(ctx, "Ana")
		require.NoError(t, err)
		assert.Equal(t, 1.0, got.Grades[0])
	})
}

func TestStudentStore_SetAttendance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t, "Ana")

	updated, err := s.SetAttendance(ctx, "Ana", floatPtr(82.5))
	require.NoError(t, err)
	assert.Equal(t, 82.5, updated.Attendance)
	assert.True(t, updated.AttendanceRecorded)

	for _, bad := range []*float64{nil, floatPtr(-0.5), floatPtr(100.01)} {
		_, err := s.SetAttendance(ctx, "Ana", bad)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}

	got, err := s.Get(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, 82.5, got.Attendance)

	_, err = s.SetAttendance(ctx, "ghost", floatPtr(50))
	assert.ErrorIs(t, err, store.ErrStudentNotFound)
}

func TestStudentStore_ReturnedRecordsAreCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t, "Ana")

	got, err := s.Get(ctx, "Ana")
	require.NoError(t, err)
	got.Grades[0] = 10
	got.Attendance = 100

	list, err := s.List(ctx)
	require.NoError(t, err)
	list[0].Grades[1] = 10

	fresh, err := s.Get(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, fresh.Grades)
	assert.Zero(t, fresh.Attendance)
}

func TestStudentStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("student-%d", i)
			_, err := s.Add(ctx, name)
			assert.NoError(t, err)
			_, err = s.SetGrades(ctx, name, []float64{1, 2, 3, 4, 5})
			assert.NoError(t, err)
			_, err = s.SetAttendance(ctx, name, floatPtr(float64(i)))
			assert.NoError(t, err)
			_, err = s.List(ctx)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, workers, count)
}
