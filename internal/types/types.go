// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS.
type EntityID uint64

// BodyID — дескриптор тела в физическом движке.
type BodyID int
