package analytics

import "context"

// joinFailure fallo aislado del fetch de un padre dentro de un join.
// Se conserva como diagnóstico inspeccionable (y se loguea en warn) aunque el
// resultado del join lo ignore: la degradación es una decisión explícita, no
// un catch invisible.
type joinFailure struct {
	ParentID int64
	Err      error
}

// joinByParent lanza un fetch por cada padre y mezcla los resultados exitosos
// en una sola colección plana. El orden de terminación de los fetches no
// importa: la mezcla no garantiza orden.
//
// Política de fallo: el fallo del fetch de un padre se degrada a contribución
// vacía y queda en la lista de fallos; nunca cancela a los hermanos ni sube
// al caller. El conteo resultante simplemente será menor que el estado real
// del backend.
func joinByParent[P, C any](
	ctx context.Context,
	parents []P,
	parentID func(P) int64,
	fetch func(ctx context.Context, parent P) ([]C, error),
) ([]C, []joinFailure) {
	type outcome struct {
		parentID int64
		items    []C
		err      error
	}

	ch := make(chan outcome, len(parents))
	for _, p := range parents {
		go func(p P) {
			items, err := fetch(ctx, p)
			ch <- outcome{parentID: parentID(p), items: items, err: err}
		}(p)
	}

	var merged []C
	var failures []joinFailure
	for range parents {
		out := <-ch
		if out.err != nil {
			failures = append(failures, joinFailure{ParentID: out.parentID, Err: out.err})
			continue
		}
		merged = append(merged, out.items...)
	}
	return merged, failures
}
