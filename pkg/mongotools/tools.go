package mongotools

import (
	"go.mongodb.org/mongo-driver/bson"
)

func SetAll(fieldKVs ...bson.M) bson.M {
	return bson.M{"$set": Merge(fieldKVs...)}
}

func Inc(field string, delta int) bson.M {
	return bson.M{"$inc": bson.M{field: delta}}
}

// Merge combines filters into one document. Later keys win.
func Merge(fieldKVs ...bson.M) bson.M {
	s := make(bson.M, len(fieldKVs))
	for _, kv := range fieldKVs {
		for k, v := range kv {
			s[k] = v
		}
	}
	return s
}

func All() bson.M {
	return bson.M{}
}

func FilterByID(id string) bson.M {
	return bson.M{"_id": id}
}

func Field[T any](field string, value T) bson.M {
	return bson.M{field: value}
}

func AtLeast[T any](field string, value T) bson.M {
	return bson.M{field: bson.M{"$gte": value}}
}
