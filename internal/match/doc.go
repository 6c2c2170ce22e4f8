// Package match scores string similarity for column-name suggestions.
package match
