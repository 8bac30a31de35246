package entity

// Vendor representa el puesto de intercambio de una cuenta.
// Se crea automáticamente al registrar el usuario (un vendor por usuario)
// y no se elimina en operación normal.
type Vendor struct {
	ID            int64
	Name          string
	Species       string
	HomeDimension string
	UserID        *int64 // dueño; nil para vendors sembrados sin cuenta
}
