package mongodb

import (
	"context"

	"github.com/gartstein/employees/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// companyDocument mirrors the stored shape of a company.
type companyDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	Name            string             `bson:"companyName"`
	EmployeesNumber int                `bson:"employeesNumber"`
}

func (d *companyDocument) toModel() *models.Company {
	return &models.Company{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		EmployeesNumber: d.EmployeesNumber,
	}
}

func companyToDocument(c *models.Company, id primitive.ObjectID) *companyDocument {
	return &companyDocument{
		ID:              id,
		Name:            c.Name,
		EmployeesNumber: c.EmployeesNumber,
	}
}

type CompanyRepository struct {
	coll *mongo.Collection
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]*models.Company, error) {
	docs, err := findAll[companyDocument](ctx, r.coll, bson.D{})
	if err != nil {
		return nil, err
	}
	return companiesFromDocuments(docs), nil
}

func (r *CompanyRepository) FindPage(ctx context.Context, page, pageSize int) (*models.Page[*models.Company], error) {
	docs, total, err := findPage[companyDocument](ctx, r.coll, page, pageSize)
	if err != nil {
		return nil, err
	}
	return models.NewPage(companiesFromDocuments(docs), page, pageSize, total), nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*models.Company, error) {
	doc, err := findOne[companyDocument](ctx, r.coll, id)
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (r *CompanyRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.coll, id)
}

func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	oid, err := newID(company.ID)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, companyToDocument(company, oid)); err != nil {
		return err
	}
	company.ID = oid.Hex()
	return nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	oid, err := objectID(company.ID)
	if err != nil {
		return err
	}
	return replace(ctx, r.coll, oid, companyToDocument(company, oid))
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) (bool, error) {
	return remove(ctx, r.coll, id)
}

func companiesFromDocuments(docs []companyDocument) []*models.Company {
	out := make([]*models.Company, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toModel())
	}
	return out
}
