/*
Package classic collects classical (pre-modern) text ciphers, kept for
teaching and puzzles rather than secure communication.

The letter alphabet and its normalization live in the alphabet sub-package;
the Playfair digraph cipher lives in the playfair sub-package.

This package itself has nothing, the sub-packages contain the API.

*/
package classic
