package pqueue

import "errors"

// ErrKeyNotFound indicates an operation referenced a key absent from the queue.
var ErrKeyNotFound = errors.New("pqueue: key not found")

// ErrKeyExists indicates Insert was called with a key already present.
var ErrKeyExists = errors.New("pqueue: key already present")

// ErrGroupNotFound indicates an operation referenced an unknown group id.
var ErrGroupNotFound = errors.New("pqueue: group not found")

// ErrEmptyQueue indicates Min/PopMin was called on an empty structure.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")
