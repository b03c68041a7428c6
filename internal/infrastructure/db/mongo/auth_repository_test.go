package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestAuthIndexModels_UniqueUsername(t *testing.T) {
	models := authIndexModels()

	found := false
	for _, m := range models {
		keys, ok := m.Keys.(bson.D)
		if !ok || len(keys) != 1 || keys[0].Key != "username" {
			continue
		}
		found = true
		if m.Options == nil || m.Options.Unique == nil || !*m.Options.Unique {
			t.Fatalf("username index must be unique, got options %+v", m.Options)
		}
	}
	if !found {
		t.Fatalf("no username index declared; duplicate registrations would both insert")
	}
}
