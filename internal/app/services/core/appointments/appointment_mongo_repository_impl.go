package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.findAll(ctx, bson.M{"userId": patientID})
}

func (r *AppointmentMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.findAll(ctx, bson.M{"docId": doctorID})
}

func (r *AppointmentMongoRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) SetCancelled(ctx context.Context, appointmentID string) error {
	return r.setField(ctx, appointmentID, bson.M{"cancelled": true})
}

func (r *AppointmentMongoRepository) SetCompleted(ctx context.Context, appointmentID string) error {
	return r.setField(ctx, appointmentID, bson.M{"isCompleted": true})
}

func (r *AppointmentMongoRepository) SetOrderID(ctx context.Context, appointmentID, orderID string) error {
	return r.setField(ctx, appointmentID, bson.M{"orderId": orderID})
}

func (r *AppointmentMongoRepository) SetPaid(ctx context.Context, appointmentID string) error {
	return r.setField(ctx, appointmentID, bson.M{"payment": true})
}

func (r *AppointmentMongoRepository) findAll(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointmentList []models.Appointment
	err = cursor.All(ctx, &appointmentList)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointmentList, nil
}

func (r *AppointmentMongoRepository) setField(ctx context.Context, appointmentID string, fields bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
