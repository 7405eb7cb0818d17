// Package config provides configuration loading and validation for pipekit
// applications.
//
// It uses Viper to load configuration from files and environment variables,
// loading .env files via godotenv before binding. Lookup order is YAML file,
// then environment, with environment winning.
//
// # Usage
//
//	var cfg AppConfig
//	err := config.LoadConfig("pipedemo", &cfg)
//
// Environment variables map onto nested keys by underscore-separated paths
// (e.g., PIPELINE_CAPACITY -> pipeline.capacity).
package config
