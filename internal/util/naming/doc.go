// Package naming provides consistent naming functions for Azure resources.
//
// Resource names follow the pattern {project}-{environment}-{type} for
// regional resources (resource group, plan, insights) and carry a
// timestamp-derived suffix for globally unique resources (storage account,
// database server, vault, web app). The suffix prevents naming conflicts
// between runs; each resource type's length and charset constraints hold by
// construction as long as the project name passes config validation.
package naming
