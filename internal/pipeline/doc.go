// Package pipeline runs a scan as an ordered series of steps.
//
// A scan is processed through four stages: file discovery, markdown
// filtering, macro extraction and report generation. Each stage is a Step
// that receives the shared model.Scan and fills in what the next stage
// needs. Steps run sequentially; the first failure ends the run and no
// later step executes.
package pipeline
