package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type product struct {
	name  string
	price float64
}

func newProduct(args ...any) (*product, error) {
	p := &product{}
	if len(args) > 0 {
		p.name, _ = args[0].(string)
	}
	if len(args) > 1 {
		p.price, _ = args[1].(float64)
	}
	return p, nil
}

type report struct {
	itemID  int
	summary string
}

func (r *report) Result() any {
	if r.summary == "" {
		return nil
	}
	return r.summary
}

func TestFactory_CreateForwardsArgs(t *testing.T) {
	f := New(newProduct)

	got, err := f.Create("Laptop", 1200.50)
	require.NoError(t, err)

	p, ok := got.(*product)
	require.True(t, ok, "Create should return the instance")
	assert.Equal(t, "Laptop", p.name)
	assert.Equal(t, 1200.50, p.price)
}

func TestFactory_CreateReturnsResultOverride(t *testing.T) {
	f := New(func(args ...any) (*report, error) {
		id, _ := args[0].(int)
		return &report{itemID: id, summary: "Processed item 123"}, nil
	})

	got, err := f.Create(123)
	require.NoError(t, err)
	assert.Equal(t, "Processed item 123", got)
}

func TestFactory_NilResultReturnsInstance(t *testing.T) {
	f := New(func(args ...any) (*report, error) {
		return &report{itemID: 7}, nil
	})

	got, err := f.Create()
	require.NoError(t, err)

	r, ok := got.(*report)
	require.True(t, ok, "nil result override should yield the instance")
	assert.Equal(t, 7, r.itemID)
}

func TestFactory_ConstructorErrorPropagates(t *testing.T) {
	boom := errors.New("value cannot be negative")
	f := New(func(args ...any) (*product, error) {
		if v, _ := args[0].(float64); v < 0 {
			return nil, boom
		}
		return &product{price: args[0].(float64)}, nil
	})

	got, err := f.Create(-1.0)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, got)

	got, err = f.Create(10.0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.(*product).price)
}
