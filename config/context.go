package config

import (
	"context"

	"github.com/spf13/viper"
)

type contextKey struct{ name string }

var viperKey = &contextKey{"config"}

// SetViper returns a context carrying the given Viper instance. A nil
// instance falls back to the global one.
func SetViper(ctx context.Context, v *viper.Viper) context.Context {
	if v == nil {
		v = viper.GetViper()
	}

	return context.WithValue(ctx, viperKey, v)
}

// Viper returns the Viper instance carried by the context, or the global
// instance when the context has none.
func Viper(ctx context.Context) *viper.Viper {
	v := ctx.Value(viperKey)
	if v == nil {
		return viper.GetViper()
	}

	return v.(*viper.Viper)
}
