// Package api exposes the zoo catalogue over HTTP. Handlers decode and
// validate JSON or multipart requests, call the services in
// internal/service, and translate their errors into localized JSON bodies
// with a status code chosen by MapErrorToStatusCode. RegisterRoutes mounts
// the resource routes (animales, secciones, eventos, comentarios, usuarios)
// under /api.
package api
