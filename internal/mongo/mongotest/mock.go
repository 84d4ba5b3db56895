// Package mongotest wraps the driver's mock deployment for unit tests.
//
// mtest is marked experimental by the driver; everything that touches it
// lives here so a driver upgrade changes one file.
package mongotest

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

type T = mtest.T

// New returns a mock-deployment test; subtests run with T.Run share it.
func New(t *testing.T) *T {
	t.Helper()
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func OK(extra ...bson.E) bson.D { return mtest.CreateSuccessResponse(extra...) }

// Inserted answers an insert command that wrote n documents.
func Inserted(n int) bson.D { return OK(bson.E{Key: "n", Value: int32(n)}) }

func CommandError(code int32, name, msg string) bson.D {
	return mtest.CreateCommandErrorResponse(mtest.CommandError{Code: code, Name: name, Message: msg})
}

// NamespaceExists is the server's answer to "create" for an existing collection.
func NamespaceExists() bson.D {
	return CommandError(48, "NamespaceExists", "Collection already exists.")
}

func WriteError(code int, msg string) bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: code, Message: msg})
}

// Collections answers listCollections with the given names.
func Collections(mt *T, names ...string) bson.D {
	docs := make([]bson.D, 0, len(names))
	for _, n := range names {
		docs = append(docs, bson.D{{Key: "name", Value: n}, {Key: "type", Value: "collection"}})
	}
	return mtest.CreateCursorResponse(0, mt.DB.Name()+".$cmd.listCollections", mtest.FirstBatch, docs...)
}

// Count answers the aggregate behind CountDocuments.
func Count(mt *T, coll string, n int64) bson.D {
	return mtest.CreateCursorResponse(0, mt.DB.Name()+"."+coll, mtest.FirstBatch, bson.D{{Key: "n", Value: n}})
}

// CommandNames lists the commands the client sent, in order.
func CommandNames(mt *T) []string {
	var names []string
	for _, e := range mt.GetAllStartedEvents() {
		names = append(names, e.CommandName)
	}
	return names
}
