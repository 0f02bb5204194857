// component/movement.go
package component

// Position компонент позиции, левый верхний угол рамки
type Position struct {
	X, Y float64
}

// Velocity смещение за один тик
type Velocity struct {
	DX, DY float64
}
