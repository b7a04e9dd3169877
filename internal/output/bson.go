package output

import (
	"io"

	"gopkg.in/mgo.v2/bson"

	"oligoseq/pkg/api"
)

// WriteBSON writes each record as a standalone BSON document, back to back,
// the layout mongodump and input.ReadRecords use.
func WriteBSON(w io.Writer, r api.SequenceV1) error {
	doc, err := bson.Marshal(r)
	if err != nil {
		return err
	}
	_, err = w.Write(doc)
	return err
}
