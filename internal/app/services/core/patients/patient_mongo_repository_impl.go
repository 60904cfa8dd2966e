package patients

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	result, err := r.Collection.InsertOne(ctx, patient)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PatientMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var patient models.Patient
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	objectID, err := primitive.ObjectIDFromHex(patient.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": patient.ConvertToBsonM()}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
