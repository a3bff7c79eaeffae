/*
Package mongostore provides an implementation of tree.Store
that keeps encoded trees as documents of a MongoDB collection.
*/
package mongostore

import (
	"context"
	"fmt"

	"github.com/pbanos/arbor/tree"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

type document struct {
	Name string `bson:"_id"`
	Data []byte `bson:"data"`
}

type mongoStore struct {
	session    *mgo.Session
	collection string
}

/*
New takes a MongoDB database session and a collection name and returns
a tree.Store that works on that collection of the default database for
the session. Trees are kept in documents with their name as _id.
*/
func New(session *mgo.Session, collection string) tree.Store {
	return &mongoStore{session, collection}
}

func (ms *mongoStore) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := ms.session.Copy()
	defer s.Close()
	_, err := ms.trees(s).UpsertId(name, &document{name, data})
	if err != nil {
		return fmt.Errorf("storing tree %q in mongo: %v", name, err)
	}
	return nil
}

func (ms *mongoStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := ms.session.Copy()
	defer s.Close()
	doc := &document{}
	err := ms.trees(s).Find(bson.M{"_id": name}).One(doc)
	if err == mgo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q from mongo: %v", name, err)
	}
	if doc.Data == nil {
		return []byte{}, nil
	}
	return doc.Data, nil
}

func (ms *mongoStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := ms.session.Copy()
	defer s.Close()
	err := ms.trees(s).RemoveId(name)
	if err != nil && err != mgo.ErrNotFound {
		return fmt.Errorf("deleting tree %q from mongo: %v", name, err)
	}
	return nil
}

func (ms *mongoStore) Close(ctx context.Context) error {
	ms.session.Close()
	return nil
}

func (ms *mongoStore) trees(s *mgo.Session) *mgo.Collection {
	return s.DB("").C(ms.collection)
}
