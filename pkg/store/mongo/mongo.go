// Package mongo implements the entity store on a remote MongoDB document
// collection. Document writes are last-write-wins; the at-most-one-active
// assignment invariant is enforced by a partial unique index, but
// cross-client read-modify-write sequences remain best-effort at this
// backend, which is the accepted gap for the system's scale.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store"
)

const connectTimeout = 10 * time.Second

// Store provides entity store operations backed by MongoDB
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to MongoDB and prepares the database handle
func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	s := &Store{client: client, db: client.Database(dbName)}
	if err := s.ensureIndexes(ctx); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

// ensureIndexes creates the partial unique index guarding active
// assignment pairs
func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.assignments().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "volunteer_id", Value: 1}, {Key: "event_id", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"deleted": false}),
	})
	if err != nil {
		return fmt.Errorf("failed to create assignment index: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) events() *mongo.Collection        { return s.db.Collection("events") }
func (s *Store) volunteers() *mongo.Collection    { return s.db.Collection("volunteers") }
func (s *Store) assignments() *mongo.Collection   { return s.db.Collection("assignments") }
func (s *Store) notifications() *mongo.Collection { return s.db.Collection("notifications") }
func (s *Store) history() *mongo.Collection       { return s.db.Collection("history") }
func (s *Store) counters() *mongo.Collection      { return s.db.Collection("counters") }

// notDeleted matches active records
var notDeleted = bson.M{"deleted": bson.M{"$ne": true}}

// SeedIfEmpty loads the seed data when no events and no volunteers exist
func (s *Store) SeedIfEmpty(ctx context.Context) error {
	eventCount, err := s.events().CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count events: %w", err)
	}
	volunteerCount, err := s.volunteers().CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count volunteers: %w", err)
	}
	if eventCount > 0 || volunteerCount > 0 {
		return nil
	}

	for i := range model.SeedEvents {
		e := model.SeedEvents[i]
		if err := s.CreateEvent(ctx, &e); err != nil {
			return fmt.Errorf("failed to seed event %s: %w", e.ID, err)
		}
	}
	for i := range model.SeedVolunteers {
		v := model.SeedVolunteers[i]
		model.NormalizeVolunteer(&v)
		if err := s.SaveVolunteer(ctx, &v); err != nil {
			return fmt.Errorf("failed to seed volunteer %s: %w", v.ID, err)
		}
	}
	return nil
}

// Events retrieves all non-deleted events
func (s *Store) Events(ctx context.Context) ([]model.Event, error) {
	cursor, err := s.events().Find(ctx, notDeleted,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	var events []model.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

// Event retrieves one non-deleted event by ID
func (s *Store) Event(ctx context.Context, id string) (*model.Event, error) {
	filter := bson.M{"_id": id, "deleted": bson.M{"$ne": true}}
	var e model.Event
	err := s.events().FindOne(ctx, filter).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query event: %w", err)
	}
	return &e, nil
}

func (s *Store) CreateEvent(ctx context.Context, e *model.Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if _, err := s.events().InsertOne(ctx, e); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (s *Store) UpdateEvent(ctx context.Context, e *model.Event) error {
	update := bson.M{"$set": bson.M{
		"name":            e.Name,
		"description":     e.Description,
		"location":        e.Location,
		"required_skills": e.RequiredSkills,
		"urgency":         e.Urgency,
		"date":            e.Date,
		"time_of_day":     e.TimeOfDay,
		"capacity":        e.Capacity,
	}}
	result, err := s.events().UpdateOne(ctx, bson.M{"_id": e.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// SoftDeleteEvent marks the event deleted and cascades to its assignments
func (s *Store) SoftDeleteEvent(ctx context.Context, id string) error {
	result, err := s.events().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"deleted": true}})
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	_, err = s.assignments().UpdateMany(ctx, bson.M{"event_id": id},
		bson.M{"$set": bson.M{"deleted": true}})
	if err != nil {
		return fmt.Errorf("failed to delete event assignments: %w", err)
	}
	return nil
}

// Volunteers retrieves all volunteer records, normalized
func (s *Store) Volunteers(ctx context.Context) ([]model.Volunteer, error) {
	cursor, err := s.volunteers().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteers: %w", err)
	}
	var volunteers []model.Volunteer
	if err := cursor.All(ctx, &volunteers); err != nil {
		return nil, fmt.Errorf("failed to decode volunteers: %w", err)
	}
	for i := range volunteers {
		model.NormalizeVolunteer(&volunteers[i])
	}
	return volunteers, nil
}

// SaveVolunteer upserts a volunteer document
func (s *Store) SaveVolunteer(ctx context.Context, v *model.Volunteer) error {
	model.NormalizeVolunteer(v)
	_, err := s.volunteers().ReplaceOne(ctx, bson.M{"_id": v.ID}, v,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save volunteer: %w", err)
	}
	return nil
}

// Assignments retrieves the active assignments for an event
func (s *Store) Assignments(ctx context.Context, eventID string) ([]model.Assignment, error) {
	filter := bson.M{"event_id": eventID, "deleted": bson.M{"$ne": true}}
	cursor, err := s.assignments().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	var assignments []model.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("failed to decode assignments: %w", err)
	}
	return assignments, nil
}

func (s *Store) IsAssigned(ctx context.Context, volunteerID, eventID string) (bool, error) {
	filter := bson.M{"volunteer_id": volunteerID, "event_id": eventID, "deleted": bson.M{"$ne": true}}
	count, err := s.assignments().CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return count > 0, nil
}

// InsertAssignment records an assignment. Duplicate-key errors from the
// partial unique index are swallowed: inserting an already-active pair is
// a no-op.
func (s *Store) InsertAssignment(ctx context.Context, a *model.Assignment) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := s.assignments().InsertOne(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}
	return nil
}

func (s *Store) SoftDeleteAssignment(ctx context.Context, volunteerID, eventID string) error {
	filter := bson.M{"volunteer_id": volunteerID, "event_id": eventID, "deleted": bson.M{"$ne": true}}
	_, err := s.assignments().UpdateMany(ctx, filter, bson.M{"$set": bson.M{"deleted": true}})
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

func (s *Store) CountAssigned(ctx context.Context, eventID string) (int, error) {
	filter := bson.M{"event_id": eventID, "deleted": bson.M{"$ne": true}}
	count, err := s.assignments().CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return int(count), nil
}

func (s *Store) CreateNotification(ctx context.Context, n *model.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	if _, err := s.notifications().InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (s *Store) NotificationsFor(ctx context.Context, volunteerID string) ([]model.Notification, error) {
	filter := bson.M{"volunteer_id": volunteerID, "deleted": bson.M{"$ne": true}}
	cursor, err := s.notifications().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	var notifications []model.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

func (s *Store) SoftDeleteNotification(ctx context.Context, volunteerID, eventID string) error {
	filter := bson.M{"volunteer_id": volunteerID, "event_id": eventID, "deleted": bson.M{"$ne": true}}
	_, err := s.notifications().UpdateMany(ctx, filter, bson.M{"$set": bson.M{"deleted": true}})
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

// AddHistory appends a history entry, allocating its sequential ID from a
// counters document
func (s *Store) AddHistory(ctx context.Context, entry *model.HistoryEntry) error {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters().FindOneAndUpdate(ctx,
		bson.M{"_id": "history"},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return fmt.Errorf("failed to allocate history id: %w", err)
	}

	entry.ID = counter.Seq
	if _, err := s.history().InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

func (s *Store) History(ctx context.Context) ([]model.HistoryEntry, error) {
	return s.queryHistory(ctx, bson.M{})
}

func (s *Store) HistoryFor(ctx context.Context, volunteerID string) ([]model.HistoryEntry, error) {
	return s.queryHistory(ctx, bson.M{"volunteer_id": volunteerID})
}

func (s *Store) queryHistory(ctx context.Context, filter bson.M) ([]model.HistoryEntry, error) {
	cursor, err := s.history().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	var entries []model.HistoryEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return entries, nil
}

var _ store.Store = (*Store)(nil)
