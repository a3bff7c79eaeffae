package mongostore_test

import (
	"os"
	"testing"

	"github.com/pbanos/arbor/tree/mongostore"
	"github.com/pbanos/arbor/tree/storetest"
	"github.com/stretchr/testify/require"
	mgo "gopkg.in/mgo.v2"
)

func TestMongoStore(t *testing.T) {
	url := os.Getenv("MONGO_URL")
	if url == "" {
		t.Skip("MONGO_URL not set")
	}
	session, err := mgo.Dial(url)
	require.NoError(t, err)
	storetest.Run(t, mongostore.New(session, "arbor_test_trees"))
}
