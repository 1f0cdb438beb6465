package memory

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	e "github.com/gartstein/employees/internal/errors"
	"github.com/gartstein/employees/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyRepository_CreateAndFind(t *testing.T) {
	repo := NewCompanyRepository()
	ctx := context.Background()

	company := &models.Company{Name: "OOCL", EmployeesNumber: 100}
	require.NoError(t, repo.Create(ctx, company))
	assert.NotEmpty(t, company.ID, "Create should assign an ID")

	found, err := repo.FindByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, company, found)

	// Mutating the returned value must not touch the stored one.
	found.Name = "changed"
	again, err := repo.FindByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "OOCL", again.Name)
}

func TestCompanyRepository_CreateKeepsExistingID(t *testing.T) {
	repo := NewCompanyRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Company{ID: "fixed", Name: "OOCL"}))

	exists, err := repo.ExistsByID(ctx, "fixed")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCompanyRepository_FindByIDNotFound(t *testing.T) {
	repo := NewCompanyRepository()

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestCompanyRepository_FindAllKeepsInsertionOrder(t *testing.T) {
	repo := NewCompanyRepository()
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(ctx, &models.Company{Name: name}))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "A", all[0].Name)
	assert.Equal(t, "B", all[1].Name)
	assert.Equal(t, "C", all[2].Name)
}

func TestCompanyRepository_FindPage(t *testing.T) {
	repo := NewCompanyRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Company{Name: "OOCL", EmployeesNumber: 100}))
	require.NoError(t, repo.Create(ctx, &models.Company{Name: "TEST", EmployeesNumber: 100}))
	require.NoError(t, repo.Create(ctx, &models.Company{Name: "THIRD", EmployeesNumber: 5}))

	page, err := repo.FindPage(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "OOCL", page.Content[0].Name)
	assert.Equal(t, "TEST", page.Content[1].Name)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)

	page, err = repo.FindPage(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "THIRD", page.Content[0].Name)

	page, err = repo.FindPage(ctx, 3, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Content)

	page, err = repo.FindPage(ctx, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, page.Content, "non-positive page size yields an empty page")
}

func TestCompanyRepository_FindPageHugeSize(t *testing.T) {
	repo := NewCompanyRepository()
	ctx := context.Background()

	for _, name := range []string{"OOCL", "TEST", "THIRD"} {
		require.NoError(t, repo.Create(ctx, &models.Company{Name: name}))
	}

	page, err := repo.FindPage(ctx, 1, math.MaxInt)
	require.NoError(t, err)
	assert.Len(t, page.Content, 3)
	assert.Equal(t, 1, page.TotalPages)

	for _, p := range []int{2, 3, math.MaxInt} {
		page, err = repo.FindPage(ctx, p, math.MaxInt)
		require.NoError(t, err, "page %d", p)
		assert.Empty(t, page.Content, "page %d", p)
		assert.Equal(t, int64(3), page.TotalElements)
	}

	page, err = repo.FindPage(ctx, math.MaxInt, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
}

func TestCompanyRepository_UpdateKeepsPosition(t *testing.T) {
	repo := NewCompanyRepository()
	ctx := context.Background()

	first := &models.Company{Name: "first"}
	second := &models.Company{Name: "second"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.Update(ctx, &models.Company{ID: first.ID, Name: "renamed", EmployeesNumber: 7}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.Company{ID: first.ID, Name: "renamed", EmployeesNumber: 7}, all[0])
	assert.Equal(t, second.ID, all[1].ID)
}

func TestCompanyRepository_UpdateNotFound(t *testing.T) {
	repo := NewCompanyRepository()

	err := repo.Update(context.Background(), &models.Company{ID: "missing"})
	assert.ErrorIs(t, err, e.ErrNotFound)

	all, _ := repo.FindAll(context.Background())
	assert.Empty(t, all, "update must not create")
}

func TestCompanyRepository_Delete(t *testing.T) {
	repo := NewCompanyRepository()
	ctx := context.Background()

	company := &models.Company{Name: "doomed"}
	require.NoError(t, repo.Create(ctx, company))

	removed, err := repo.Delete(ctx, company.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = repo.FindByID(ctx, company.ID)
	assert.ErrorIs(t, err, e.ErrNotFound)

	removed, err = repo.Delete(ctx, company.ID)
	require.NoError(t, err)
	assert.False(t, removed, "second delete is a no-op")
}

func TestEmployeeRepository_Filters(t *testing.T) {
	repo := NewEmployeeRepository()
	ctx := context.Background()

	employees := []*models.Employee{
		{Name: "Tom", Age: 18, Gender: "Male", Salary: 10000, CompanyID: "c1"},
		{Name: "Amy", Age: 19, Gender: "Female", Salary: 10001, CompanyID: "c1"},
		{Name: "Bob", Age: 20, Gender: "male", Salary: 10002, CompanyID: "c2"},
	}
	for _, emp := range employees {
		require.NoError(t, repo.Create(ctx, emp))
	}

	males, err := repo.FindByGender(ctx, "Male")
	require.NoError(t, err)
	require.Len(t, males, 1, "gender match is case-sensitive")
	assert.Equal(t, "Tom", males[0].Name)

	none, err := repo.FindByGender(ctx, "Other")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	ofC1, err := repo.FindByCompanyID(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, ofC1, 2)
	assert.Equal(t, "Tom", ofC1[0].Name)
	assert.Equal(t, "Amy", ofC1[1].Name)
}

func TestEmployeeRepository_CRUD(t *testing.T) {
	repo := NewEmployeeRepository()
	ctx := context.Background()

	emp := &models.Employee{Name: "Tom", Age: 18, Gender: "Male", Salary: 1000}
	require.NoError(t, repo.Create(ctx, emp))

	found, err := repo.FindByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, emp, found)

	updated := &models.Employee{ID: emp.ID, Name: "Tommy", Age: 19, Gender: "Male", Salary: 2000, CompanyID: "c9"}
	require.NoError(t, repo.Update(ctx, updated))
	found, err = repo.FindByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)

	page, err := repo.FindPage(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Content, 1)

	removed, err := repo.Delete(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	exists, err := repo.ExistsByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEmployeeRepository_ConcurrentAccess(t *testing.T) {
	repo := NewEmployeeRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			emp := &models.Employee{Name: fmt.Sprintf("emp-%d", i), Gender: "Male"}
			_ = repo.Create(ctx, emp)
			_, _ = repo.FindAll(ctx)
			_, _ = repo.FindPage(ctx, 1, 5)
			emp.Age = i
			_ = repo.Update(ctx, emp)
			if i%2 == 0 {
				_, _ = repo.Delete(ctx, emp.ID)
			}
		}(i)
	}
	wg.Wait()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 25)
}
