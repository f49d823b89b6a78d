/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads configuration structures, such as ParsingConfiguration, from the environment, `.env` files and flags.
package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/stringto/commonerrors"
	"github.com/ARM-software/stringto/value"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
	flagKeyPrefix      = "uniqueprefixforprivateflagbindingkeys123" // Has to be lower case and hopefully unique
)

// Load loads the configuration from the environment (i.e. .env file, environment variables) and puts the entries into configurationToSet.
// Values not found in the environment come from defaultConfiguration.
// `envVarPrefix` defines the prefix of environment variables e.g. with prefix "num", `NUM_INTEGER_BASE` sets the `integer.base` entry.
// Numbers are converted using the parsers (see DecodeHook): an invalid number in the environment results in an error.
// Validation failures are returned as IValidationError.
func Load(envVarPrefix string, configurationToSet, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as `Load` but reuses the viper session provided.
// Viper's precedence order is maintained:
//  1. values set using explicit calls to `Set`
//  2. flags
//  3. environment (variables or `.env`)
//  4. configuration file
//  5. key/value store
//  6. default values (set via flag default values, or calls to `SetDefault` or via `defaultConfiguration`)
//
// Default values from `defaultConfiguration` take precedence over flag defaults unless they are empty (see value.IsEmpty).
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet, defaultConfiguration IServiceConfiguration) (err error) {
	if viperSession == nil || configurationToSet == nil {
		return commonerrors.ErrUndefined
	}
	if defaultConfiguration != nil {
		var defaults map[string]any
		err = mapstructure.Decode(defaultConfiguration, &defaults)
		if err != nil {
			return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not read default configuration")
		}
		err = viperSession.MergeConfigMap(defaults)
		if err != nil {
			return commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not set default configuration")
		}
	}

	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)

	linkFlagKeysToStructureKeys(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet, viper.DecodeHook(DecodeHook()))
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "unable to decode config into struct")
	}
	err = configurationToSet.Validate()
	if err != nil {
		err = newValidationError(err)
	}
	return
}

// BindFlagToEnv binds a pflag to an environment variable.
// envVar is the environment variable name with or without the prefix envVarPrefix.
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	if flag == nil {
		return commonerrors.New(commonerrors.ErrUndefined, "missing flag")
	}
	setEnvOptions(viperSession, envVarPrefix)
	shortKey, cleansedEnvVar := generateEnvVarConfigKeys(envVar, envVarPrefix)

	err = viperSession.BindPFlag(shortKey, flag)
	if err != nil {
		return
	}
	err = viperSession.BindEnv(shortKey, cleansedEnvVar)
	return
}

func generateEnvVarConfigKeys(envVar, envVarPrefix string) (shortKey string, cleansedEnvVar string) {
	envVarLower := strings.ToLower(envVar)
	envVarPrefixLower := strings.ToLower(envVarPrefix)
	short := envVarLower
	if strings.HasPrefix(envVarLower, envVarPrefixLower) {
		short = strings.TrimPrefix(strings.TrimPrefix(envVarLower, envVarPrefixLower), EnvVarSeparator)
	}
	shortKey = fmt.Sprintf("%v%v%v", flagKeyPrefix, configKeySeparator, strings.ReplaceAll(short, EnvVarSeparator, configKeySeparator))
	cleansedEnvVar = strings.ToUpper(strings.ReplaceAll(fmt.Sprintf("%v%v%v", envVarPrefix, EnvVarSeparator, short), configKeySeparator, EnvVarSeparator))
	return
}

func isFlagKey(key string) bool {
	return strings.HasPrefix(key, flagKeyPrefix)
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

// linkFlagKeysToStructureKeys creates aliases from flag keys to structure keys, as viper aliases do not work well with nested configurations.
func linkFlagKeysToStructureKeys(viperSession *viper.Viper, envVarPrefix string) {
	keys := viperSession.AllKeys()
	for i := range keys {
		key := keys[i]
		if isFlagKey(key) {
			continue
		}
		flagKey, _ := generateEnvVarConfigKeys(key, envVarPrefix)
		if viperSession.IsSet(flagKey) {
			viperSession.Set(key, viperSession.Get(flagKey))
		} else {
			v := viperSession.Get(flagKey)
			if !value.IsEmpty(v) {
				viperSession.SetDefault(key, v)
				if value.IsEmpty(viperSession.Get(key)) {
					viperSession.Set(key, v)
				}
			}
		}
		viperSession.RegisterAlias(flagKey, key)
	}
}
