package component

// Block неделимая часть барьера.
type Block struct {
	Obstacle int // Номер барьера слева направо
}
