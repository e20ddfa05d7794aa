package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los adaptadores de persistencia traducen errores del store a estos centinelas;
// los handlers HTTP los mapean a códigos de respuesta.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrInvalidQuantity cantidad negativa o no numérica; se rechaza antes de tocar el store.
	ErrInvalidQuantity = errors.New("cantidad inválida")
	// ErrInvalidThreshold umbral de reorden negativo o no numérico.
	ErrInvalidThreshold = errors.New("umbral inválido")
	// ErrUnknownReference producto o bodega inexistente (integridad referencial del store).
	ErrUnknownReference = errors.New("referencia a producto o bodega inexistente")
	// ErrConflictingWrite violación de constraint no explicada por las anteriores.
	ErrConflictingWrite = errors.New("escritura en conflicto")
	// ErrStoreUnavailable fallo de conectividad con el store; fatal para la llamada, no para el proceso.
	ErrStoreUnavailable = errors.New("almacén de datos no disponible")
)
