package db

import (
	"context"
	"fmt"
	"time"

	"github.com/limovia/fleetcrm/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CompanyCollection defines the interface for company data operations.
type CompanyCollection interface {
	InsertCompany(ctx context.Context, company models.Company) (string, error)
	FindCompanies(ctx context.Context) ([]models.Company, error)
	FindCompanyByID(ctx context.Context, id string) (*models.Company, error)
	UpdateCompany(ctx context.Context, id string, company models.Company) error
	DeleteCompany(ctx context.Context, id string) error
	DeleteAllCompanies(ctx context.Context) error
}

// BrandCollection defines the interface for brand data operations. Brands
// live in their own collection even though the dashboard edits them next
// to the company details.
type BrandCollection interface {
	InsertBrand(ctx context.Context, brand models.Brand) (string, error)
	FindBrands(ctx context.Context) ([]models.Brand, error)
	UpdateBrand(ctx context.Context, id string, brand models.Brand) error
	DeleteBrand(ctx context.Context, id string) error
	DeleteAllBrands(ctx context.Context) error
}

// MongoCompanyCollection implements CompanyCollection for MongoDB.
type MongoCompanyCollection struct {
	Collection *mongo.Collection
}

// InsertCompany inserts a company record and returns its generated ID.
func (c *MongoCompanyCollection) InsertCompany(ctx context.Context, company models.Company) (string, error) {
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()
	res, err := c.Collection.InsertOne(ctx, company)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindCompanies returns all company records.
func (c *MongoCompanyCollection) FindCompanies(ctx context.Context) ([]models.Company, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{}, findSortedBy("name"))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var companies []models.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// FindCompanyByID finds a company by its ID.
func (c *MongoCompanyCollection) FindCompanyByID(ctx context.Context, id string) (*models.Company, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid company ID: %w", err)
	}
	var company models.Company
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// UpdateCompany updates a company by its ID.
func (c *MongoCompanyCollection) UpdateCompany(ctx context.Context, id string, company models.Company) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid company ID: %w", err)
	}
	company.UpdatedAt = time.Now()
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": company})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCompany deletes a company by its ID.
func (c *MongoCompanyCollection) DeleteCompany(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid company ID: %w", err)
	}
	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllCompanies removes every company record.
func (c *MongoCompanyCollection) DeleteAllCompanies(ctx context.Context) error {
	_, err := c.Collection.DeleteMany(ctx, bson.M{})
	return err
}

// MongoBrandCollection implements BrandCollection for MongoDB.
type MongoBrandCollection struct {
	Collection *mongo.Collection
}

// InsertBrand inserts a brand record and returns its generated ID.
func (c *MongoBrandCollection) InsertBrand(ctx context.Context, brand models.Brand) (string, error) {
	brand.CreatedAt = time.Now()
	brand.UpdatedAt = time.Now()
	res, err := c.Collection.InsertOne(ctx, brand)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindBrands returns all brand records.
func (c *MongoBrandCollection) FindBrands(ctx context.Context) ([]models.Brand, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{}, findSortedBy("name"))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var brands []models.Brand
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// UpdateBrand updates a brand by its ID.
func (c *MongoBrandCollection) UpdateBrand(ctx context.Context, id string, brand models.Brand) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid brand ID: %w", err)
	}
	brand.UpdatedAt = time.Now()
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": brand})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBrand deletes a brand by its ID.
func (c *MongoBrandCollection) DeleteBrand(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid brand ID: %w", err)
	}
	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllBrands removes every brand record.
func (c *MongoBrandCollection) DeleteAllBrands(ctx context.Context) error {
	_, err := c.Collection.DeleteMany(ctx, bson.M{})
	return err
}
