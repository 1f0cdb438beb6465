package mongodb

import (
	"context"

	"github.com/gartstein/employees/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// employeeDocument mirrors the stored shape of an employee.
type employeeDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Age       int                `bson:"age"`
	Gender    string             `bson:"gender"`
	Salary    float64            `bson:"salary"`
	CompanyID string             `bson:"companyId"`
}

func (d *employeeDocument) toModel() *models.Employee {
	return &models.Employee{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Age:       d.Age,
		Gender:    d.Gender,
		Salary:    d.Salary,
		CompanyID: d.CompanyID,
	}
}

func employeeToDocument(emp *models.Employee, id primitive.ObjectID) *employeeDocument {
	return &employeeDocument{
		ID:        id,
		Name:      emp.Name,
		Age:       emp.Age,
		Gender:    emp.Gender,
		Salary:    emp.Salary,
		CompanyID: emp.CompanyID,
	}
}

type EmployeeRepository struct {
	coll *mongo.Collection
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]*models.Employee, error) {
	return r.find(ctx, bson.D{})
}

func (r *EmployeeRepository) FindPage(ctx context.Context, page, pageSize int) (*models.Page[*models.Employee], error) {
	docs, total, err := findPage[employeeDocument](ctx, r.coll, page, pageSize)
	if err != nil {
		return nil, err
	}
	return models.NewPage(employeesFromDocuments(docs), page, pageSize, total), nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	doc, err := findOne[employeeDocument](ctx, r.coll, id)
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (r *EmployeeRepository) FindByGender(ctx context.Context, gender string) ([]*models.Employee, error) {
	return r.find(ctx, bson.M{"gender": gender})
}

func (r *EmployeeRepository) FindByCompanyID(ctx context.Context, companyID string) ([]*models.Employee, error) {
	return r.find(ctx, bson.M{"companyId": companyID})
}

func (r *EmployeeRepository) find(ctx context.Context, filter interface{}) ([]*models.Employee, error) {
	docs, err := findAll[employeeDocument](ctx, r.coll, filter)
	if err != nil {
		return nil, err
	}
	return employeesFromDocuments(docs), nil
}

func (r *EmployeeRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.coll, id)
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	oid, err := newID(employee.ID)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, employeeToDocument(employee, oid)); err != nil {
		return err
	}
	employee.ID = oid.Hex()
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	oid, err := objectID(employee.ID)
	if err != nil {
		return err
	}
	return replace(ctx, r.coll, oid, employeeToDocument(employee, oid))
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) (bool, error) {
	return remove(ctx, r.coll, id)
}

func employeesFromDocuments(docs []employeeDocument) []*models.Employee {
	out := make([]*models.Employee, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toModel())
	}
	return out
}
