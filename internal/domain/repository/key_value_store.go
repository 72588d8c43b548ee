package repository

import "context"

// KeyValueStore es el almacén durable de documentos bajo una clave fija
// (equivalente a un localStorage). Cada Put reemplaza el valor completo.
// Get devuelve domain.ErrNotFound si la clave no existe.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
