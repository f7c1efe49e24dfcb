package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// refShape indica con qué forma llegó la referencia en el JSON.
type refShape int

const (
	refAbsent   refShape = iota // campo ausente o null
	refIDOnly                   // identificador plano: 5 o "5"
	refEmbedded                 // objeto embebido: {"id":5,"name":"Home"}
)

// EntityRef referencia a otra entidad del record store.
//
// El backend JPA serializa las relaciones a veces como objeto embebido y a
// veces como identificador plano, según el fetch que tocó la entidad. Esta
// variante etiquetada absorbe ambas formas en un solo tipo para que la
// cadena de resolución (nombre embebido → lookup por id → centinela) viva en
// un único sitio en vez de en checks ad hoc por llamada.
type EntityRef struct {
	shape refShape
	id    int64
	name  string
}

// EmbeddedRef construye una referencia embebida (id + nombre conocidos).
func EmbeddedRef(id int64, name string) EntityRef {
	return EntityRef{shape: refEmbedded, id: id, name: name}
}

// IDRef construye una referencia solo-identificador.
func IDRef(id int64) EntityRef {
	return EntityRef{shape: refIDOnly, id: id}
}

// Present indica si la referencia llegó en el JSON (en cualquiera de sus formas).
func (r EntityRef) Present() bool { return r.shape != refAbsent }

// ID devuelve el identificador referenciado, 0 si no llegó.
func (r EntityRef) ID() int64 { return r.id }

// Name devuelve el nombre embebido, "" si la referencia no lo trae.
func (r EntityRef) Name() string {
	if r.shape == refEmbedded {
		return r.name
	}
	return ""
}

// embeddedRef forma objeto de la referencia en el wire.
type embeddedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON acepta null, un número, un string numérico o un objeto
// {id, name} (el objeto puede traer solo el id). Nunca falla por forma
// inesperada: lo irreconocible se trata como ausente, porque la resolución
// de referencias no debe tumbar la decodificación de un lote completo.
func (r *EntityRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = EntityRef{}
		return nil
	}

	if data[0] == '{' {
		var obj embeddedRef
		if err := json.Unmarshal(data, &obj); err != nil {
			*r = EntityRef{}
			return nil
		}
		*r = EntityRef{shape: refEmbedded, id: obj.ID, name: obj.Name}
		return nil
	}

	raw := string(bytes.Trim(data, `"`))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		*r = EntityRef{}
		return nil
	}
	*r = EntityRef{shape: refIDOnly, id: id}
	return nil
}

// MarshalJSON re-emite la referencia con la forma con la que llegó.
func (r EntityRef) MarshalJSON() ([]byte, error) {
	switch r.shape {
	case refEmbedded:
		return json.Marshal(embeddedRef{ID: r.id, Name: r.name})
	case refIDOnly:
		return json.Marshal(r.id)
	default:
		return []byte("null"), nil
	}
}
