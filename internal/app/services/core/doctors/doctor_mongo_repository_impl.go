package doctors

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var doctor models.Doctor
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"password": 0}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var doctorList []models.Doctor
	err = cursor.All(ctx, &doctorList)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctorList, nil
}

func (r *DoctorMongoRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	objectID, err := primitive.ObjectIDFromHex(doctor.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": doctor.ConvertToBsonM()}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) SetAvailability(ctx context.Context, doctorID string, available bool) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"available": available}})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// ReserveSlot claims the slot with a single conditional update so two
// concurrent bookings can never both match the filter. When the update
// matches nothing the doctor is re-read once to classify the refusal.
func (r *DoctorMongoRepository) ReserveSlot(ctx context.Context, doctorID, slotDate, slotTime string) (contracts.SlotReservationResult, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return contracts.SlotReservationDoctorMissing, exceptions.ErrMongoDBNotObjectID(err)
	}

	slotField := fmt.Sprintf("slotsBooked.%s", slotDate)
	filter := bson.M{
		"_id":       objectID,
		"available": true,
		slotField:   bson.M{"$ne": slotTime},
	}
	update := bson.M{"$push": bson.M{slotField: slotTime}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return contracts.SlotReservationTaken, exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 1 {
		return contracts.SlotReserved, nil
	}

	doctor, err := r.FindByID(ctx, doctorID)
	if err != nil {
		return contracts.SlotReservationTaken, err
	}
	if doctor == nil {
		return contracts.SlotReservationDoctorMissing, nil
	}
	if !doctor.Available {
		return contracts.SlotReservationDoctorUnavailable, nil
	}
	return contracts.SlotReservationTaken, nil
}

func (r *DoctorMongoRepository) ReleaseSlot(ctx context.Context, doctorID, slotDate, slotTime string) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	slotField := fmt.Sprintf("slotsBooked.%s", slotDate)
	update := bson.M{"$pull": bson.M{slotField: slotTime}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
