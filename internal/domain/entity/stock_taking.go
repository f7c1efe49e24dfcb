package entity

// StockTaking registro de conteo físico (auditoría de stock).
//
// La cantidad contada llega con dos nombres posibles según la versión del
// backend: "quantity" o "physicalStock". Se modelan como punteros porque
// gana el primer campo *presente*, no el primero distinto de cero: un
// quantity explícito de 0 prevalece sobre un physicalStock con valor.
type StockTaking struct {
	ID            int64     `json:"id"`
	Product       EntityRef `json:"product"`
	ProductID     int64     `json:"productId,omitempty"`
	SystemStock   int64     `json:"systemStock"`
	PhysicalStock *int64    `json:"physicalStock,omitempty"`
	Quantity      *int64    `json:"quantity,omitempty"`
	MinQuantity   *int64    `json:"minQuantity,omitempty"`
	Variance      *int64    `json:"variance,omitempty"`
	Active        bool      `json:"active"`
}

// EffectiveQuantity devuelve la cantidad contada: quantity si está presente,
// si no physicalStock, si no 0.
func (s StockTaking) EffectiveQuantity() int64 {
	if s.Quantity != nil {
		return *s.Quantity
	}
	if s.PhysicalStock != nil {
		return *s.PhysicalStock
	}
	return 0
}

// EffectiveMinQuantity devuelve el umbral de bajo stock del registro, o el
// valor por defecto configurado si el registro no trae minQuantity.
func (s StockTaking) EffectiveMinQuantity(def int64) int64 {
	if s.MinQuantity != nil {
		return *s.MinQuantity
	}
	return def
}

// EffectiveVariance devuelve la variación del conteo. Se usa el campo
// variance que persiste el record store; si falta se reconstruye como
// physicalStock − systemStock (convención asumida: positivo = sobrante).
func (s StockTaking) EffectiveVariance() int64 {
	if s.Variance != nil {
		return *s.Variance
	}
	if s.PhysicalStock != nil {
		return *s.PhysicalStock - s.SystemStock
	}
	return 0
}
