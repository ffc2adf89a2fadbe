package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/frostline/freezer-api/internal/core/domain"
	"github.com/frostline/freezer-api/internal/core/ports"
)

const collectionFreezers = "freezers"

// FreezerRepository implements ports.FreezerRepository on a MongoDB
// collection keyed by freezer name.
//
// All quantity adjustments are expressed as a single server-side update
// ($inc, $unset, or a pipeline $set), so concurrent adjustments on the same
// freezer serialize inside MongoDB and no increment is ever lost.
type FreezerRepository struct {
	col *mongo.Collection
}

func NewFreezerRepository(db *mongo.Database) *FreezerRepository {
	return &FreezerRepository{col: db.Collection(collectionFreezers)}
}

// List returns freezers ordered by name so limit/offset pagination is
// deterministic.
func (r *FreezerRepository) List(ctx context.Context, page ports.Page) ([]*domain.Freezer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if page.Limit > 0 {
		opts.SetLimit(page.Limit)
	}
	if page.Offset > 0 {
		opts.SetSkip(page.Offset)
	}

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list freezers: %w", err)
	}

	freezers := []*domain.Freezer{}
	if err := cursor.All(ctx, &freezers); err != nil {
		return nil, fmt.Errorf("decode freezers: %w", err)
	}
	return freezers, nil
}

func (r *FreezerRepository) Get(ctx context.Context, name string) (*domain.Freezer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.Freezer
	err := r.col.FindOne(ctx, bson.M{"_id": name}).Decode(&f)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFreezerNotFound
		}
		return nil, fmt.Errorf("find freezer: %w", err)
	}
	return &f, nil
}

// Replace swaps the whole document body for the named freezer.
func (r *FreezerRepository) Replace(ctx context.Context, name string, f *domain.Freezer) (*domain.Freezer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	replacement := *f
	replacement.Name = name

	var updated domain.Freezer
	err := r.col.FindOneAndReplace(
		ctx,
		bson.M{"_id": name},
		&replacement,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFreezerNotFound
		}
		return nil, fmt.Errorf("replace freezer: %w", err)
	}
	return &updated, nil
}

func (r *FreezerRepository) Remove(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return fmt.Errorf("delete freezer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFreezerNotFound
	}
	return nil
}

// Add increments counts with a single $inc document covering every product
// in the request. Entries are created implicitly on first put-in.
func (r *FreezerRepository) Add(ctx context.Context, name string, amounts map[string]int64) (*domain.Freezer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	inc := bson.M{}
	for product, n := range amounts {
		inc[productField(product)] = n
	}

	var updated domain.Freezer
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": inc},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFreezerNotFound
		}
		return nil, fmt.Errorf("put-in %q: %w", name, err)
	}
	return &updated, nil
}

// Take decrements counts. The underflow policy picks the update shape:
//
//	reject — the filter additionally requires every current count to cover
//	         its decrement, so an underflow matches nothing and the whole
//	         adjustment fails without touching the document.
//	clamp  — a pipeline $set floors each count at zero.
//	allow  — a plain negative $inc.
func (r *FreezerRepository) Take(ctx context.Context, name string, amounts map[string]int64, policy domain.UnderflowPolicy) (*domain.Freezer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": name}
	var update interface{}

	switch policy {
	case domain.UnderflowClamp:
		set := bson.M{}
		for product, n := range amounts {
			field := productField(product)
			set[field] = bson.M{
				"$max": bson.A{
					0,
					bson.M{"$subtract": bson.A{
						bson.M{"$ifNull": bson.A{"$" + field, 0}},
						n,
					}},
				},
			}
		}
		update = mongo.Pipeline{{{Key: "$set", Value: set}}}

	case domain.UnderflowAllow:
		inc := bson.M{}
		for product, n := range amounts {
			inc[productField(product)] = -n
		}
		update = bson.M{"$inc": inc}

	default: // reject
		inc := bson.M{}
		for product, n := range amounts {
			filter[productField(product)] = bson.M{"$gte": n}
			inc[productField(product)] = -n
		}
		update = bson.M{"$inc": inc}
	}

	var updated domain.Freezer
	err := r.col.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("put-out %q: %w", name, err)
	}

	// No match: either the freezer is missing or the guarded filter caught
	// an underflow. Disambiguate with a plain lookup.
	if _, getErr := r.Get(ctx, name); getErr != nil {
		return nil, getErr
	}
	return nil, domain.ErrInsufficientStock
}

// RemoveProduct unsets one key of the products map. The $exists guard keeps
// the document untouched when the key is absent.
func (r *FreezerRepository) RemoveProduct(ctx context.Context, name string, product string) (*domain.Freezer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	field := productField(product)

	var updated domain.Freezer
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name, field: bson.M{"$exists": true}},
		bson.M{"$unset": bson.M{field: ""}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("remove product %q from %q: %w", product, name, err)
	}

	if _, getErr := r.Get(ctx, name); getErr != nil {
		return nil, getErr
	}
	return nil, domain.ErrProductNotFound
}

// SetCounts overwrites the given counts in one atomic $set.
func (r *FreezerRepository) SetCounts(ctx context.Context, name string, counts map[string]int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	for product, n := range counts {
		set[productField(product)] = n
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": name}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("set counts on %q: %w", name, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrFreezerNotFound
	}
	return nil
}

// Each streams all freezers in name order. No per-call timeout: a full pass
// over the collection is bounded by the caller's context instead.
func (r *FreezerRepository) Each(ctx context.Context, fn func(*domain.Freezer) error) error {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return fmt.Errorf("iterate freezers: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var f domain.Freezer
		if err := cursor.Decode(&f); err != nil {
			return fmt.Errorf("decode freezer: %w", err)
		}
		if err := fn(&f); err != nil {
			return err
		}
	}
	return cursor.Err()
}

func productField(product string) string {
	return "products." + product
}
