package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the single document kept per tracked person.
// Count mirrors len(Exercises) and is maintained by the store on append.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username  string             `bson:"username" json:"username"` // Unique
	Count     int                `bson:"count" json:"count"`
	Exercises []Exercise         `bson:"exercises" json:"exercises"` // Insertion order = creation order
}

// ExerciseLog is the response shape for GET /api/users/:_id/logs.
type ExerciseLog struct {
	ID       primitive.ObjectID `json:"_id"`
	Username string             `json:"username"`
	Count    int                `json:"count"` // Stored count, not len(Log)
	Log      []LogEntry         `json:"log"`
}
