// Package ident owns the SSH identification-string line exchanged before
// any binary packet: `SSH-protoversion-softwareversion[ comments]`,
// RFC 4253 section 4.2.
package ident
