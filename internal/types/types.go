package types

// EntityID идентификатор сущности в ECS.
type EntityID uint64
